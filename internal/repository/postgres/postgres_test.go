package postgres_test

import (
	"doctor/internal/repository/postgres"
	"doctor/models"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
)

type PGTest struct {
	conn *sqlx.DB
}

// Needs a live database, skipped unless PG_TEST_DSN points at one, e.g.
// host=localhost user=doctor password=doctor dbname=doctor sslmode=disable
func initPGTest(t *testing.T) *PGTest {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}

	return &PGTest{conn: db}
}

func Test_OrderLifecycle(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewOrderRepository(c.conn)

	id := uuid.NewString()
	sessionID := uuid.NewString()

	t.Run("Store", func(t *testing.T) {
		assert.NoError(t, pgStore.Store(&models.Order{
			ID:         id,
			SessionID:  sessionID,
			Symbol:     "BTCBUSD",
			Side:       models.SideBuy,
			Type:       "LIMIT",
			Quantity:   1,
			Status:     models.OrderStatusSubmitted,
			ExternalID: uuid.NewString(),
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}))
	})

	t.Run("GetActive", func(t *testing.T) {
		orders, err := pgStore.GetActive()
		assert.NoError(t, err)

		var found bool
		for _, o := range orders {
			if o.ID == id {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("AdoptBrokerState", func(t *testing.T) {
		assert.NoError(t, pgStore.AdoptBrokerState(id, models.OrderStatusFilled, 1, 100.0, time.Now()))

		o, err := pgStore.GetByID(id)
		assert.NoError(t, err)
		assert.Equal(t, models.OrderStatusFilled, o.Status)
		assert.Equal(t, float64(1), o.FilledQty)
		assert.True(t, o.FilledAt.Valid)
	})

	t.Run("GetActiveExcludesTerminal", func(t *testing.T) {
		orders, err := pgStore.GetActive()
		assert.NoError(t, err)

		for _, o := range orders {
			assert.NotEqual(t, id, o.ID)
		}
	})

	t.Run("LastActivityAt", func(t *testing.T) {
		last, err := pgStore.LastActivityAt()
		assert.NoError(t, err)
		assert.False(t, last.IsZero())
	})
}

func Test_OrderExpire(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewOrderRepository(c.conn)

	id := uuid.NewString()

	assert.NoError(t, pgStore.Store(&models.Order{
		ID:        id,
		SessionID: uuid.NewString(),
		Symbol:    "BTCBUSD",
		Side:      models.SideBuy,
		Type:      "LIMIT",
		Quantity:  1,
		Status:    models.OrderStatusSubmitted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))

	assert.NoError(t, pgStore.Expire(id, "expired: stuck past threshold", time.Now()))

	o, err := pgStore.GetByID(id)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusExpired, o.Status)
	assert.Equal(t, "expired: stuck past threshold", o.Reason)
	assert.True(t, o.ClosedAt.Valid)
}

func Test_PositionLifecycle(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewPositionRepository(c.conn)

	id := uuid.NewString()

	assert.NoError(t, pgStore.Store(&models.Position{
		ID:         id,
		SessionID:  uuid.NewString(),
		Symbol:     "BTCBUSD",
		Side:       models.PositionSideLong,
		Quantity:   2,
		EntryPrice: 100,
		Status:     models.PositionStatusOpen,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}))

	t.Run("SetQuantity", func(t *testing.T) {
		assert.NoError(t, pgStore.SetQuantity(id, 1.5, time.Now()))

		p, err := pgStore.GetByID(id)
		assert.NoError(t, err)
		assert.Equal(t, 1.5, p.Quantity)
	})

	t.Run("Close", func(t *testing.T) {
		assert.NoError(t, pgStore.Close(id, time.Now()))

		p, err := pgStore.GetByID(id)
		assert.NoError(t, err)
		assert.Equal(t, models.PositionStatusClosed, p.Status)
	})

	t.Run("CloseAgainIsNoop", func(t *testing.T) {
		assert.NoError(t, pgStore.Close(id, time.Now()))
	})
}

func Test_ActivityLog(t *testing.T) {
	c := initPGTest(t)
	pgStore := postgres.NewActivityRepository(c.conn)

	sessionID := uuid.NewString()
	issueType := "ORDER_NOT_FOUND"

	assert.NoError(t, pgStore.Store(&models.ActivityLogEntry{
		ID:                uuid.NewString(),
		SessionID:         sessionID,
		ObservationType:   models.ObservationIssue,
		Observation:       "{}",
		IssueType:         issueType,
		Severity:          "WARNING",
		IssueCount:        1,
		WarningCount:      1,
		Decision:          "AUTO_FIX",
		DecisionReasoning: "rule_satisfied",
		ActionType:        "REMEDIATE",
		ActionDetail:      "EXPIRE_ORDER",
		ActionTarget:      "order:test",
		ActionResult:      models.ActionResultSuccess,
		Metadata:          "{}",
		CreatedAt:         time.Now(),
	}))

	t.Run("CountAutoFixes", func(t *testing.T) {
		n, err := pgStore.CountAutoFixes(issueType, time.Now().Add(-time.Hour))
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
	})

	t.Run("LastSuccessfulFix", func(t *testing.T) {
		last, err := pgStore.LastSuccessfulFix(issueType)
		assert.NoError(t, err)
		assert.False(t, last.IsZero())
	})

	t.Run("DailySummary", func(t *testing.T) {
		rows, err := pgStore.DailySummary(time.Now())
		assert.NoError(t, err)
		assert.NotEmpty(t, rows)
	})

	t.Run("RecurringIssues", func(t *testing.T) {
		rows, err := pgStore.RecurringIssues(time.Now().Add(-24 * time.Hour))
		assert.NoError(t, err)

		var found bool
		for _, row := range rows {
			if row.IssueType == issueType {
				found = true
				assert.GreaterOrEqual(t, row.AutoFixes, 1)
			}
		}
		assert.True(t, found)
	})
}
