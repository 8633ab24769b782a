package usecasees

import (
	"doctor/internal/repository/postgres"
	pgMocks "doctor/internal/repository/postgres/mocks"
	"doctor/internal/usecasees/structs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sirupsen/logrus"
)

func Test_Views_RecurringIssues(t *testing.T) {
	activityRepo := &pgMocks.ActivityRepo{}

	activityRepo.On("RecurringIssues", mock.AnythingOfType("time.Time")).
		Return([]postgres.RecurringIssueRow{
			{
				IssueType:   structs.IssueOrderNotFound,
				Total:       10,
				AutoFixes:   8,
				FixSuccess:  6,
				Escalations: 2,
			},
			{
				IssueType:   structs.IssueOrphanPosition,
				Total:       3,
				Escalations: 3,
			},
		}, nil)

	views := NewViewsUseCase(activityRepo, 30*24*time.Hour, logrus.New())

	stats, err := views.RecurringIssues()
	assert.NoError(t, err)
	assert.Len(t, stats, 2)

	assert.Equal(t, structs.IssueOrderNotFound, stats[0].IssueType)
	assert.Equal(t, 0.75, stats[0].SuccessRate)

	// No fixes attempted, rate stays zero instead of dividing by zero.
	assert.Equal(t, structs.IssueOrphanPosition, stats[1].IssueType)
	assert.Equal(t, float64(0), stats[1].SuccessRate)
}
