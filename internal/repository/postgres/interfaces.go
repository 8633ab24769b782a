package postgres

import (
	"time"

	"doctor/models"
)

//go:generate mockery --case=snake --name=OrderRepo
//go:generate mockery --case=snake --name=PositionRepo
//go:generate mockery --case=snake --name=ActivityRepo

type OrderRepo interface {
	Store(m *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetActive() ([]models.Order, error)
	AdoptBrokerState(id, status string, filledQty, filledAvgPrice float64, ts time.Time) error
	Expire(id, reason string, ts time.Time) error
	LastActivityAt() (time.Time, error)
}

type PositionRepo interface {
	Store(m *models.Position) error
	GetByID(id string) (*models.Position, error)
	GetOpen() ([]models.Position, error)
	Close(id string, exitTime time.Time) error
	SetQuantity(id string, qty float64, ts time.Time) error
}

type ActivityRepo interface {
	Store(m *models.ActivityLogEntry) error
	CountAutoFixes(issueType string, since time.Time) (int, error)
	LastSuccessfulFix(issueType string) (time.Time, error)
	CountFailures(issueType string, since time.Time) (int, error)
	DailySummary(day time.Time) ([]SummaryRow, error)
	RecurringIssues(since time.Time) ([]RecurringIssueRow, error)
	RecentEscalations(limit int) ([]models.ActivityLogEntry, error)
	RecentFailures(limit int) ([]models.ActivityLogEntry, error)
}
