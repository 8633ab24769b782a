package models

import (
	"database/sql"
	"time"
)

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderStatusCreated     = "CREATED"
	OrderStatusSubmitted   = "SUBMITTED"
	OrderStatusAccepted    = "ACCEPTED"
	OrderStatusPartialFill = "PARTIAL_FILL"
	OrderStatusFilled      = "FILLED"
	OrderStatusCancelled   = "CANCELLED"
	OrderStatusRejected    = "REJECTED"
	OrderStatusExpired     = "EXPIRED"
)

type Order struct {
	ID             string         `db:"id"`
	PositionID     sql.NullString `db:"position_id"`
	ParentID       sql.NullString `db:"parent_id"`
	SessionID      string         `db:"session_id"`
	Symbol         string         `db:"symbol"`
	Side           string         `db:"side"`
	Type           string         `db:"type"`
	Quantity       float64        `db:"quantity"`
	FilledQty      float64        `db:"filled_qty"`
	FilledAvgPrice float64        `db:"filled_avg_price"`
	Status         string         `db:"status"`
	ExternalID     string         `db:"external_id"`
	Reason         string         `db:"reason"`
	CreatedAt      time.Time      `db:"created_at"`
	SubmittedAt    sql.NullTime   `db:"submitted_at"`
	AcceptedAt     sql.NullTime   `db:"accepted_at"`
	FilledAt       sql.NullTime   `db:"filled_at"`
	ClosedAt       sql.NullTime   `db:"closed_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

// orderStatusRank defines the forward-only partial order of the lifecycle.
// Terminal statuses share the top rank and are unreachable from one another.
var orderStatusRank = map[string]int{
	OrderStatusCreated:     0,
	OrderStatusSubmitted:   1,
	OrderStatusAccepted:    2,
	OrderStatusPartialFill: 3,
	OrderStatusFilled:      4,
	OrderStatusCancelled:   4,
	OrderStatusRejected:    4,
	OrderStatusExpired:     4,
}

func IsTerminalOrderStatus(status string) bool {
	switch status {
	case OrderStatusFilled, OrderStatusCancelled, OrderStatusRejected, OrderStatusExpired:
		return true
	}

	return false
}

// CanAdvance reports whether an order may move from one status to another.
// Only forward transitions are allowed: a ledger status is never rewound
// and terminal statuses are never left. CANCELLED, REJECTED and EXPIRED
// are reachable only from SUBMITTED or ACCEPTED.
func CanAdvance(from, to string) bool {
	fromRank, ok := orderStatusRank[from]
	if !ok {
		return false
	}

	toRank, ok := orderStatusRank[to]
	if !ok {
		return false
	}

	if IsTerminalOrderStatus(from) {
		return false
	}

	switch to {
	case OrderStatusCancelled, OrderStatusRejected, OrderStatusExpired:
		return from == OrderStatusSubmitted || from == OrderStatusAccepted
	}

	return toRank > fromRank
}

func (o *Order) Age(now time.Time) time.Duration {
	return now.Sub(o.CreatedAt)
}
