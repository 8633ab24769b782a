package usecasees

import (
	mongoMocks "doctor/internal/repository/mongo/mocks"
	mongoStructs "doctor/internal/repository/mongo/structs"
	pgMocks "doctor/internal/repository/postgres/mocks"
	"doctor/internal/usecasees/structs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sirupsen/logrus"
)

type mockGenPolicy struct {
	rulesRepo    *mongoMocks.RulesRepo
	activityRepo *pgMocks.ActivityRepo

	logger *logrus.Logger
}

func newMockGenPolicy() *mockGenPolicy {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &mockGenPolicy{
		rulesRepo:    &mongoMocks.RulesRepo{},
		activityRepo: &pgMocks.ActivityRepo{},
		logger:       logger,
	}
}

func (mockGen *mockGenPolicy) initPolicyUseCase() *policyUseCase {
	return NewPolicyUseCase(mockGen.rulesRepo, mockGen.activityRepo, mockGen.logger)
}

func fixableIssue() *structs.Issue {
	return &structs.Issue{
		Type:     structs.IssueOrderNotFound,
		Severity: structs.SeverityWarning,
		Subject:  "order:o1",
		Remediation: &structs.Remediation{
			Kind:    structs.RemediationExpireOrder,
			OrderID: "o1",
		},
	}
}

func enabledRule() *mongoStructs.Rule {
	return &mongoStructs.Rule{
		IssueType:          structs.IssueOrderNotFound,
		AutoFixEnabled:     true,
		MaxFixesPerHour:    10,
		CooldownMinutes:    5,
		EscalationPriority: "MEDIUM",
		Active:             true,
	}
}

func Test_Policy_OrphanAlwaysEscalates(t *testing.T) {
	mockGen := newMockGenPolicy()

	// No rule or activity expectations: the boundary must short-circuit
	// before any lookup, even when a remediation is attached.
	decision := mockGen.initPolicyUseCase().Decide(&structs.Issue{
		Type:     structs.IssueOrphanPosition,
		Severity: structs.SeverityCritical,
		Subject:  "symbol:XYZ",
		Remediation: &structs.Remediation{
			Kind:       structs.RemediationClosePos,
			PositionID: "p1",
		},
	})

	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonHardBoundary, decision.Reasoning)
	assert.Equal(t, "HIGH", decision.Priority)

	mockGen.rulesRepo.AssertNotCalled(t, "Load", mock.Anything)
	mockGen.activityRepo.AssertNotCalled(t, "CountAutoFixes", mock.Anything, mock.Anything)
}

func Test_Policy_NoRemediation(t *testing.T) {
	mockGen := newMockGenPolicy()
	policy := mockGen.initPolicyUseCase()

	decision := policy.Decide(&structs.Issue{
		Type:     structs.IssueOrderStatusMismatch,
		Severity: structs.SeverityCritical,
		Subject:  "order:o1",
	})
	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonNoRemediation, decision.Reasoning)
	assert.Equal(t, "HIGH", decision.Priority)

	decision = policy.Decide(&structs.Issue{
		Type:     structs.IssueCycleStale,
		Severity: structs.SeverityInfo,
		Subject:  "ledger",
	})
	assert.Equal(t, structs.ActionMonitor, decision.Action)
	assert.Equal(t, ReasonInformational, decision.Reasoning)
}

func Test_Policy_NoRule(t *testing.T) {
	mockGen := newMockGenPolicy()

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).
		Return(nil, mongo.ErrNoDocuments)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonNoActiveRule, decision.Reasoning)
	assert.Equal(t, "MEDIUM", decision.Priority)
}

func Test_Policy_InactiveRule(t *testing.T) {
	mockGen := newMockGenPolicy()

	rule := enabledRule()
	rule.Active = false
	rule.EscalationPriority = "LOW"

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(rule, nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonNoActiveRule, decision.Reasoning)
	assert.Equal(t, "LOW", decision.Priority)
}

func Test_Policy_AutoFixDisabled(t *testing.T) {
	mockGen := newMockGenPolicy()

	rule := enabledRule()
	rule.AutoFixEnabled = false

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(rule, nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonAutoFixDisabled, decision.Reasoning)
	assert.Equal(t, "MEDIUM", decision.Priority)
}

func Test_Policy_RateLimit(t *testing.T) {
	mockGen := newMockGenPolicy()

	rule := enabledRule()
	rule.MaxFixesPerHour = 3

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(rule, nil)
	mockGen.activityRepo.On("CountAutoFixes", structs.IssueOrderNotFound, mock.AnythingOfType("time.Time")).
		Return(3, nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionDefer, decision.Action)
	assert.Equal(t, ReasonRateLimited, decision.Reasoning)

	mockGen.activityRepo.AssertNotCalled(t, "LastSuccessfulFix", mock.Anything)
}

func Test_Policy_Cooldown(t *testing.T) {
	mockGen := newMockGenPolicy()

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(enabledRule(), nil)
	mockGen.activityRepo.On("CountAutoFixes", structs.IssueOrderNotFound, mock.AnythingOfType("time.Time")).
		Return(1, nil)
	mockGen.activityRepo.On("LastSuccessfulFix", structs.IssueOrderNotFound).
		Return(time.Now().Add(-time.Minute), nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionDefer, decision.Action)
	assert.Equal(t, ReasonCooldown, decision.Reasoning)
}

func Test_Policy_AllowsFix(t *testing.T) {
	mockGen := newMockGenPolicy()

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(enabledRule(), nil)
	mockGen.activityRepo.On("CountAutoFixes", structs.IssueOrderNotFound, mock.AnythingOfType("time.Time")).
		Return(2, nil)
	mockGen.activityRepo.On("LastSuccessfulFix", structs.IssueOrderNotFound).
		Return(time.Now().Add(-time.Hour), nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionAutoFix, decision.Action)
	assert.Equal(t, ReasonRuleSatisfied, decision.Reasoning)
}

func Test_Policy_NeverFixedBefore(t *testing.T) {
	mockGen := newMockGenPolicy()

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(enabledRule(), nil)
	mockGen.activityRepo.On("CountAutoFixes", structs.IssueOrderNotFound, mock.AnythingOfType("time.Time")).
		Return(0, nil)
	mockGen.activityRepo.On("LastSuccessfulFix", structs.IssueOrderNotFound).
		Return(time.Time{}, nil)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionAutoFix, decision.Action)
	assert.Equal(t, ReasonRuleSatisfied, decision.Reasoning)
}

func Test_Policy_AuditUnavailable(t *testing.T) {
	mockGen := newMockGenPolicy()

	mockGen.rulesRepo.On("Load", structs.IssueOrderNotFound).Return(enabledRule(), nil)
	mockGen.activityRepo.On("CountAutoFixes", structs.IssueOrderNotFound, mock.AnythingOfType("time.Time")).
		Return(0, assert.AnError)

	decision := mockGen.initPolicyUseCase().Decide(fixableIssue())

	assert.Equal(t, structs.ActionEscalate, decision.Action)
	assert.Equal(t, ReasonAuditUnavailable, decision.Reasoning)
}
