package usecasees

import (
	"time"

	mongoRepo "doctor/internal/repository/mongo"
	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees/structs"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ReasonHardBoundary     = "hard_boundary"
	ReasonNoRemediation    = "no_remediation"
	ReasonInformational    = "informational"
	ReasonNoActiveRule     = "no_active_rule"
	ReasonAutoFixDisabled  = "auto_fix_disabled"
	ReasonRateLimited      = "rate_limited"
	ReasonCooldown         = "cooldown"
	ReasonAuditUnavailable = "audit_unavailable"
	ReasonRuleSatisfied    = "rule_satisfied"

	rateWindow = time.Hour
)

// policyUseCase turns one issue into a decision. Rate and cooldown state is
// always read back from the persisted activity log, never kept in memory, so
// the limits hold across restarts and concurrent orchestrator instances.
type policyUseCase struct {
	rulesRepo    mongoRepo.RulesRepo
	activityRepo postgres.ActivityRepo

	logger *logrus.Logger
}

func NewPolicyUseCase(
	rulesRepo mongoRepo.RulesRepo,
	activityRepo postgres.ActivityRepo,
	logger *logrus.Logger,
) *policyUseCase {
	return &policyUseCase{
		rulesRepo:    rulesRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

func (u *policyUseCase) Decide(issue *structs.Issue) structs.Decision {
	// Hard boundary, not configurable: an orphan position can only be
	// fixed by touching real capital, so it always goes to a human.
	if issue.Type == structs.IssueOrphanPosition {
		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonHardBoundary,
			Priority:  defaultPriority(issue),
		}
	}

	if issue.Remediation == nil {
		if issue.Severity == structs.SeverityInfo {
			return structs.Decision{
				Action:    structs.ActionMonitor,
				Reasoning: ReasonInformational,
			}
		}

		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonNoRemediation,
			Priority:  defaultPriority(issue),
		}
	}

	rule, err := u.rulesRepo.Load(issue.Type)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			u.logger.
				WithError(err).
				WithField("issueType", issue.Type).
				Error("rule lookup failed")
		}

		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonNoActiveRule,
			Priority:  defaultPriority(issue),
		}
	}

	if !rule.Active {
		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonNoActiveRule,
			Priority:  rule.EscalationPriority,
		}
	}

	if !rule.AutoFixEnabled {
		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonAutoFixDisabled,
			Priority:  rule.EscalationPriority,
		}
	}

	fixes, err := u.activityRepo.CountAutoFixes(issue.Type, time.Now().Add(-rateWindow))
	if err != nil {
		// Fail safe: without the log there is no way to prove the limit
		// holds, so never fix on a guess.
		u.logger.
			WithError(err).
			WithField("issueType", issue.Type).
			Error("auto-fix count lookup failed")

		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonAuditUnavailable,
			Priority:  rule.EscalationPriority,
		}
	}

	if fixes >= rule.MaxFixesPerHour {
		return structs.Decision{
			Action:    structs.ActionDefer,
			Reasoning: ReasonRateLimited,
		}
	}

	lastFix, err := u.activityRepo.LastSuccessfulFix(issue.Type)
	if err != nil {
		u.logger.
			WithError(err).
			WithField("issueType", issue.Type).
			Error("last fix lookup failed")

		return structs.Decision{
			Action:    structs.ActionEscalate,
			Reasoning: ReasonAuditUnavailable,
			Priority:  rule.EscalationPriority,
		}
	}

	cooldown := time.Duration(rule.CooldownMinutes) * time.Minute
	if !lastFix.IsZero() && time.Since(lastFix) < cooldown {
		return structs.Decision{
			Action:    structs.ActionDefer,
			Reasoning: ReasonCooldown,
		}
	}

	return structs.Decision{
		Action:    structs.ActionAutoFix,
		Reasoning: ReasonRuleSatisfied,
	}
}

func defaultPriority(issue *structs.Issue) string {
	if issue.Severity == structs.SeverityCritical {
		return "HIGH"
	}

	return "MEDIUM"
}
