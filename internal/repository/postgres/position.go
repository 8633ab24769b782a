package postgres

import (
	"time"

	"doctor/models"

	"github.com/jmoiron/sqlx"
)

type PositionRepository struct {
	conn *sqlx.DB
}

func NewPositionRepository(conn *sqlx.DB) PositionRepo {
	return &PositionRepository{
		conn: conn,
	}
}

func (r *PositionRepository) Store(m *models.Position) error {
	if _, err := r.conn.NamedExec("INSERT INTO positions (id,session_id,symbol,side,quantity,entry_price,exit_price,entry_time,exit_time,current_price,stop_price,target_price,realized_pnl,unrealized_pnl,status,created_at,updated_at) VALUES (:id,:session_id,:symbol,:side,:quantity,:entry_price,:exit_price,:entry_time,:exit_time,:current_price,:stop_price,:target_price,:realized_pnl,:unrealized_pnl,:status,:created_at,:updated_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *PositionRepository) GetByID(id string) (*models.Position, error) {
	var position models.Position

	if err := r.conn.QueryRowx("SELECT * FROM positions WHERE id = $1 LIMIT 1", id).StructScan(&position); err != nil {
		return nil, err
	}

	return &position, nil
}

func (r *PositionRepository) GetOpen() ([]models.Position, error) {
	var positions []models.Position

	if err := r.conn.Select(&positions, "SELECT * FROM positions WHERE status = $1 ORDER BY created_at ASC;",
		models.PositionStatusOpen); err != nil {
		return nil, err
	}

	return positions, nil
}

// Close marks one position closed. The guard on status keeps the write
// idempotent and leaves closed rows untouched.
func (r *PositionRepository) Close(id string, exitTime time.Time) error {
	if _, err := r.conn.Exec("UPDATE positions SET status = $1, exit_time = $2, updated_at = $2 WHERE id = $3 AND status = $4;",
		models.PositionStatusClosed, exitTime.UTC(), id, models.PositionStatusOpen); err != nil {
		return err
	}

	return nil
}

func (r *PositionRepository) SetQuantity(id string, qty float64, ts time.Time) error {
	if _, err := r.conn.Exec("UPDATE positions SET quantity = $1, updated_at = $2 WHERE id = $3;",
		qty, ts.UTC(), id); err != nil {
		return err
	}

	return nil
}
