package usecasees

import (
	"time"

	"doctor/internal/repository/postgres"
	"doctor/models"

	"github.com/sirupsen/logrus"
)

// viewsUseCase is the read side over the activity log. Pure projections for
// operators; nothing here ever writes back.
type viewsUseCase struct {
	activityRepo postgres.ActivityRepo

	window time.Duration

	logger *logrus.Logger
}

func NewViewsUseCase(
	activityRepo postgres.ActivityRepo,
	window time.Duration,
	logger *logrus.Logger,
) *viewsUseCase {
	return &viewsUseCase{
		activityRepo: activityRepo,
		window:       window,
		logger:       logger,
	}
}

func (u *viewsUseCase) DailySummary(day time.Time) ([]postgres.SummaryRow, error) {
	return u.activityRepo.DailySummary(day)
}

type RecurringIssueStat struct {
	IssueType   string  `json:"issue_type"`
	Total       int     `json:"total"`
	AutoFixes   int     `json:"auto_fixes"`
	SuccessRate float64 `json:"success_rate"`
	Escalations int     `json:"escalations"`
}

func (u *viewsUseCase) RecurringIssues() ([]RecurringIssueStat, error) {
	rows, err := u.activityRepo.RecurringIssues(time.Now().Add(-u.window))
	if err != nil {
		return nil, err
	}

	stats := make([]RecurringIssueStat, 0, len(rows))
	for _, row := range rows {
		stat := RecurringIssueStat{
			IssueType:   row.IssueType,
			Total:       row.Total,
			AutoFixes:   row.AutoFixes,
			Escalations: row.Escalations,
		}

		if row.AutoFixes > 0 {
			stat.SuccessRate = float64(row.FixSuccess) / float64(row.AutoFixes)
		}

		stats = append(stats, stat)
	}

	return stats, nil
}

func (u *viewsUseCase) RecentEscalations(limit int) ([]models.ActivityLogEntry, error) {
	return u.activityRepo.RecentEscalations(limit)
}

func (u *viewsUseCase) RecentFailures(limit int) ([]models.ActivityLogEntry, error) {
	return u.activityRepo.RecentFailures(limit)
}
