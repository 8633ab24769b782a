package postgres

import (
	"time"

	"doctor/models"

	"github.com/jmoiron/sqlx"
)

type OrderRepository struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepo {
	return &OrderRepository{
		conn: conn,
	}
}

func (r *OrderRepository) Store(m *models.Order) error {
	if _, err := r.conn.NamedExec("INSERT INTO orders (id,position_id,parent_id,session_id,symbol,side,type,quantity,filled_qty,filled_avg_price,status,external_id,reason,created_at,updated_at) VALUES (:id,:position_id,:parent_id,:session_id,:symbol,:side,:type,:quantity,:filled_qty,:filled_avg_price,:status,:external_id,:reason,:created_at,:updated_at)", m); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order

	if err := r.conn.QueryRowx("SELECT * FROM orders WHERE id = $1 LIMIT 1", id).StructScan(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// GetActive returns every order still in a non-terminal status, oldest first.
func (r *OrderRepository) GetActive() ([]models.Order, error) {
	var orders []models.Order

	if err := r.conn.Select(&orders, "SELECT * FROM orders WHERE status NOT IN ($1,$2,$3,$4) ORDER BY created_at ASC;",
		models.OrderStatusFilled,
		models.OrderStatusCancelled,
		models.OrderStatusRejected,
		models.OrderStatusExpired,
	); err != nil {
		return nil, err
	}

	return orders, nil
}

// AdoptBrokerState copies broker-authoritative status and fill fields onto one
// order row. A single statement, so a failed adoption leaves no partial state.
func (r *OrderRepository) AdoptBrokerState(id, status string, filledQty, filledAvgPrice float64, ts time.Time) error {
	if _, err := r.conn.Exec(`UPDATE orders
		SET status = $1,
			filled_qty = $2,
			filled_avg_price = $3,
			updated_at = $4,
			filled_at = CASE WHEN $1 = 'FILLED' THEN $4 ELSE filled_at END,
			closed_at = CASE WHEN $1 IN ('CANCELLED','REJECTED','EXPIRED') THEN $4 ELSE closed_at END
		WHERE id = $5;`, status, filledQty, filledAvgPrice, ts.UTC(), id); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) Expire(id, reason string, ts time.Time) error {
	if _, err := r.conn.Exec("UPDATE orders SET status = $1, reason = $2, closed_at = $3, updated_at = $3 WHERE id = $4;",
		models.OrderStatusExpired, reason, ts.UTC(), id); err != nil {
		return err
	}

	return nil
}

func (r *OrderRepository) LastActivityAt() (time.Time, error) {
	var last time.Time

	if err := r.conn.QueryRowx("SELECT COALESCE(MAX(updated_at), 'epoch'::timestamptz) FROM orders;").Scan(&last); err != nil {
		return time.Time{}, err
	}

	return last, nil
}
