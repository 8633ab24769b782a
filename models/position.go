package models

import (
	"database/sql"
	"time"
)

const (
	PositionSideLong  = "LONG"
	PositionSideShort = "SHORT"

	PositionStatusPending   = "PENDING"
	PositionStatusOpen      = "OPEN"
	PositionStatusClosed    = "CLOSED"
	PositionStatusCancelled = "CANCELLED"
)

type Position struct {
	ID            string          `db:"id"`
	SessionID     string          `db:"session_id"`
	Symbol        string          `db:"symbol"`
	Side          string          `db:"side"`
	Quantity      float64         `db:"quantity"`
	EntryPrice    float64         `db:"entry_price"`
	ExitPrice     sql.NullFloat64 `db:"exit_price"`
	EntryTime     sql.NullTime    `db:"entry_time"`
	ExitTime      sql.NullTime    `db:"exit_time"`
	CurrentPrice  float64         `db:"current_price"`
	StopPrice     sql.NullFloat64 `db:"stop_price"`
	TargetPrice   sql.NullFloat64 `db:"target_price"`
	RealizedPnL   float64         `db:"realized_pnl"`
	UnrealizedPnL float64         `db:"unrealized_pnl"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

func IsTerminalPositionStatus(status string) bool {
	return status == PositionStatusClosed || status == PositionStatusCancelled
}
