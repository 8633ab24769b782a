package models

import "time"

const (
	ObservationIssue       = "ISSUE"
	ObservationPassSummary = "PASS_SUMMARY"

	ActionResultSuccess = "SUCCESS"
	ActionResultFailed  = "FAILED"
	ActionResultSkipped = "SKIPPED"
)

// ActivityLogEntry is one append-only audit record: either a processed issue
// or a pass summary. Rows are inserted once and never updated or deleted.
type ActivityLogEntry struct {
	ID                string    `db:"id"`
	SessionID         string    `db:"session_id"`
	ObservationType   string    `db:"observation_type"`
	Observation       string    `db:"observation"`
	IssueType         string    `db:"issue_type"`
	Severity          string    `db:"severity"`
	IssueCount        int       `db:"issue_count"`
	CriticalCount     int       `db:"critical_count"`
	WarningCount      int       `db:"warning_count"`
	Decision          string    `db:"decision"`
	DecisionReasoning string    `db:"decision_reasoning"`
	ActionType        string    `db:"action_type"`
	ActionDetail      string    `db:"action_detail"`
	ActionTarget      string    `db:"action_target"`
	ActionResult      string    `db:"action_result"`
	ErrorMessage      string    `db:"error_message"`
	DurationMS        int64     `db:"duration_ms"`
	Metadata          string    `db:"metadata"`
	CreatedAt         time.Time `db:"created_at"`
}
