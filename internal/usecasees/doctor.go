package usecasees

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctor/internal/controllers"
	"doctor/internal/repository/postgres"
	"doctor/internal/usecasees/structs"
	"doctor/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	actionRemediate = "REMEDIATE"
	actionNotify    = "NOTIFY"
	actionNone      = "NONE"

	// A remediation failure repeating within the rate window is escalated.
	failureEscalationThreshold = 2
)

// doctorUseCase runs the reconciliation pass: detect, decide, remediate,
// audit, summarize. Passes never overlap; a pass that cannot reach the broker
// still completes with a degraded status.
type doctorUseCase struct {
	detector    *detectorUseCase
	policy      *policyUseCase
	remediation *remediationUseCase

	activityRepo  postgres.ActivityRepo
	tgmController controllers.TgmCtrl

	metrics map[structs.MetricConst]prometheus.Counter

	cron        *cron.Cron
	passTimeout time.Duration

	sem chan struct{}

	logger *logrus.Logger
}

func NewDoctorUseCase(
	detector *detectorUseCase,
	policy *policyUseCase,
	remediation *remediationUseCase,
	activityRepo postgres.ActivityRepo,
	tgmController controllers.TgmCtrl,
	metrics map[structs.MetricConst]prometheus.Counter,
	cron *cron.Cron,
	passTimeout time.Duration,
	logger *logrus.Logger,
) *doctorUseCase {
	return &doctorUseCase{
		detector:      detector,
		policy:        policy,
		remediation:   remediation,
		activityRepo:  activityRepo,
		tgmController: tgmController,
		metrics:       metrics,
		cron:          cron,
		passTimeout:   passTimeout,
		sem:           make(chan struct{}, 1),
		logger:        logger,
	}
}

// Monitoring schedules recurring passes. A tick that arrives while the
// previous pass still runs is skipped, never queued.
func (u *doctorUseCase) Monitoring(interval time.Duration, onReport func(*structs.PassReport)) error {
	_, err := u.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		report := u.RunPass(context.Background())

		u.logger.
			WithField("sessionID", report.SessionID).
			WithField("status", report.Status).
			WithField("issues", report.IssuesFound).
			Info("reconciliation pass complete")

		if onReport != nil {
			onReport(report)
		}
	})
	if err != nil {
		return err
	}

	u.cron.Start()

	return nil
}

func (u *doctorUseCase) RunPass(ctx context.Context) *structs.PassReport {
	select {
	case u.sem <- struct{}{}:
		defer func() { <-u.sem }()
	default:
		u.logger.Warn("pass already running, skipping")

		return &structs.PassReport{Status: structs.PassStatusOK}
	}

	ctx, cancel := context.WithTimeout(ctx, u.passTimeout)
	defer cancel()

	started := time.Now()
	sessionID := uuid.NewString()

	report := &structs.PassReport{
		SessionID: sessionID,
		Status:    structs.PassStatusOK,
	}

	issues, detectErr := u.detector.Detect(ctx)
	if detectErr != nil {
		u.logger.
			WithError(detectErr).
			Error("detection degraded")

		report.Status = structs.PassStatusError
	}

	report.IssuesFound = len(issues)

	for i := range issues {
		u.processIssue(&issues[i], sessionID, report)
	}

	if report.Status != structs.PassStatusError {
		switch {
		case report.Critical > 0:
			report.Status = structs.PassStatusCritical
		case report.Warning > 0:
			report.Status = structs.PassStatusWarning
		}
	}

	report.Duration = time.Since(started)

	u.storeSummary(report, started)
	u.inc(structs.MetricPassCompleted)

	return report
}

func (u *doctorUseCase) processIssue(issue *structs.Issue, sessionID string, report *structs.PassReport) {
	started := time.Now()

	u.inc(structs.MetricIssuesDetected)

	switch issue.Severity {
	case structs.SeverityCritical:
		report.Critical++
	case structs.SeverityWarning:
		report.Warning++
	}

	decision := u.policy.Decide(issue)

	observation, err := json.Marshal(issue)
	if err != nil {
		u.logger.
			WithError(err).
			Error("observation marshal failed")
	}

	entry := &models.ActivityLogEntry{
		ID:                uuid.NewString(),
		SessionID:         sessionID,
		ObservationType:   models.ObservationIssue,
		Observation:       string(observation),
		IssueType:         issue.Type,
		Severity:          issue.Severity,
		IssueCount:        1,
		Decision:          decision.Action,
		DecisionReasoning: decision.Reasoning,
		ActionType:        actionNone,
		ActionResult:      models.ActionResultSkipped,
		Metadata:          "{}",
		CreatedAt:         time.Now(),
	}

	switch issue.Severity {
	case structs.SeverityCritical:
		entry.CriticalCount = 1
	case structs.SeverityWarning:
		entry.WarningCount = 1
	}

	switch decision.Action {
	case structs.ActionAutoFix:
		u.applyFix(issue, entry, report)
	case structs.ActionEscalate:
		u.escalate(issue, &decision, entry)
		report.Escalated++
	case structs.ActionDefer:
		report.Deferred++
	}

	entry.DurationMS = time.Since(started).Milliseconds()

	if err := u.activityRepo.Store(entry); err != nil {
		u.logger.
			WithError(err).
			WithField("issueType", issue.Type).
			Error("audit store failed")
	}
}

// applyFix executes one approved remediation. A failure is audited and, on
// repetition within the window, escalated; it never blocks the rest of the
// pass and is never retried within the same pass.
func (u *doctorUseCase) applyFix(issue *structs.Issue, entry *models.ActivityLogEntry, report *structs.PassReport) {
	entry.ActionType = actionRemediate
	entry.ActionDetail = string(issue.Remediation.Kind)
	entry.ActionTarget = issue.Remediation.Target()

	if err := u.remediation.Apply(issue.Remediation); err != nil {
		entry.ActionResult = models.ActionResultFailed
		entry.ErrorMessage = err.Error()

		report.Failed++
		u.inc(structs.MetricAutoFixFailed)

		u.logger.
			WithError(err).
			WithField("target", entry.ActionTarget).
			Error("remediation failed")

		failures, countErr := u.activityRepo.CountFailures(issue.Type, time.Now().Add(-rateWindow))
		if countErr == nil && failures+1 >= failureEscalationThreshold {
			u.notify("HIGH",
				fmt.Sprintf("remediation keeps failing for %s", issue.Type),
				fmt.Sprintf("%s: %s", entry.ActionTarget, err.Error()))
		}

		return
	}

	entry.ActionResult = models.ActionResultSuccess

	report.AutoFixed++
	u.inc(structs.MetricAutoFixSuccess)
}

func (u *doctorUseCase) escalate(issue *structs.Issue, decision *structs.Decision, entry *models.ActivityLogEntry) {
	entry.ActionType = actionNotify
	entry.ActionTarget = issue.Subject

	u.inc(structs.MetricEscalations)

	if err := u.tgmController.Escalate(
		decision.Priority,
		fmt.Sprintf("%s (%s): %s", issue.Type, issue.Severity, decision.Reasoning),
		fmt.Sprintf("%s %s", issue.Subject, issue.Evidence.Detail),
	); err != nil {
		// Fire and forget: a missed notification never fails the pass.
		entry.ErrorMessage = err.Error()
		entry.ActionResult = models.ActionResultFailed

		u.logger.
			WithError(err).
			Error("escalation notify failed")

		return
	}

	entry.ActionResult = models.ActionResultSuccess
}

func (u *doctorUseCase) notify(priority, message, context string) {
	if err := u.tgmController.Escalate(priority, message, context); err != nil {
		u.logger.
			WithError(err).
			Error("notify failed")
	}
}

func (u *doctorUseCase) storeSummary(report *structs.PassReport, started time.Time) {
	metadata, err := json.Marshal(report)
	if err != nil {
		u.logger.
			WithError(err).
			Error("report marshal failed")

		metadata = []byte("{}")
	}

	entry := &models.ActivityLogEntry{
		ID:              uuid.NewString(),
		SessionID:       report.SessionID,
		ObservationType: models.ObservationPassSummary,
		Observation:     string(metadata),
		IssueCount:      report.IssuesFound,
		CriticalCount:   report.Critical,
		WarningCount:    report.Warning,
		ActionType:      actionNone,
		ActionResult:    models.ActionResultSuccess,
		DurationMS:      time.Since(started).Milliseconds(),
		Metadata:        string(metadata),
		CreatedAt:       time.Now(),
	}

	if err := u.activityRepo.Store(entry); err != nil {
		u.logger.
			WithError(err).
			Error("summary store failed")
	}
}

func (u *doctorUseCase) inc(metric structs.MetricConst) {
	if counter, ok := u.metrics[metric]; ok {
		counter.Inc()
	}
}
