package postgres

import (
	"database/sql"
	"time"

	"doctor/models"

	"github.com/jmoiron/sqlx"
)

type ActivityRepository struct {
	conn *sqlx.DB
}

func NewActivityRepository(conn *sqlx.DB) ActivityRepo {
	return &ActivityRepository{
		conn: conn,
	}
}

// Store appends one audit record. There is deliberately no update or delete
// on this table.
func (r *ActivityRepository) Store(m *models.ActivityLogEntry) error {
	if _, err := r.conn.NamedExec("INSERT INTO activity_log (id,session_id,observation_type,observation,issue_type,severity,issue_count,critical_count,warning_count,decision,decision_reasoning,action_type,action_detail,action_target,action_result,error_message,duration_ms,metadata,created_at) VALUES (:id,:session_id,:observation_type,:observation,:issue_type,:severity,:issue_count,:critical_count,:warning_count,:decision,:decision_reasoning,:action_type,:action_detail,:action_target,:action_result,:error_message,:duration_ms,:metadata,:created_at)", m); err != nil {
		return err
	}

	return nil
}

// CountAutoFixes counts auto-fix decisions for one issue type since the given
// time. Read from the persisted log so the rate limit survives restarts.
func (r *ActivityRepository) CountAutoFixes(issueType string, since time.Time) (int, error) {
	var count int

	if err := r.conn.QueryRowx("SELECT COUNT(*) FROM activity_log WHERE issue_type = $1 AND decision = 'AUTO_FIX' AND created_at > $2;",
		issueType, since.UTC()).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// LastSuccessfulFix returns the time of the last auto-fix for the issue type
// whose action actually succeeded. Zero time when there is none.
func (r *ActivityRepository) LastSuccessfulFix(issueType string) (time.Time, error) {
	var last sql.NullTime

	if err := r.conn.QueryRowx("SELECT MAX(created_at) FROM activity_log WHERE issue_type = $1 AND decision = 'AUTO_FIX' AND action_result = $2;",
		issueType, models.ActionResultSuccess).Scan(&last); err != nil {
		return time.Time{}, err
	}

	if !last.Valid {
		return time.Time{}, nil
	}

	return last.Time, nil
}

func (r *ActivityRepository) CountFailures(issueType string, since time.Time) (int, error) {
	var count int

	if err := r.conn.QueryRowx("SELECT COUNT(*) FROM activity_log WHERE issue_type = $1 AND action_result = $2 AND created_at > $3;",
		issueType, models.ActionResultFailed, since.UTC()).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

type SummaryRow struct {
	Decision     string `db:"decision"`
	ActionResult string `db:"action_result"`
	Count        int    `db:"count"`
}

func (r *ActivityRepository) DailySummary(day time.Time) ([]SummaryRow, error) {
	var rows []SummaryRow

	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	if err := r.conn.Select(&rows, "SELECT decision, action_result, COUNT(*) AS count FROM activity_log WHERE observation_type = $1 AND created_at >= $2 AND created_at < $3 GROUP BY decision, action_result ORDER BY count DESC;",
		models.ObservationIssue, start, end); err != nil {
		return nil, err
	}

	return rows, nil
}

type RecurringIssueRow struct {
	IssueType   string `db:"issue_type"`
	Total       int    `db:"total"`
	AutoFixes   int    `db:"auto_fixes"`
	FixSuccess  int    `db:"fix_success"`
	Escalations int    `db:"escalations"`
}

// RecurringIssues aggregates per-type frequency and auto-fix outcomes over a
// trailing window.
func (r *ActivityRepository) RecurringIssues(since time.Time) ([]RecurringIssueRow, error) {
	var rows []RecurringIssueRow

	if err := r.conn.Select(&rows, `SELECT issue_type,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE decision = 'AUTO_FIX') AS auto_fixes,
			COUNT(*) FILTER (WHERE decision = 'AUTO_FIX' AND action_result = 'SUCCESS') AS fix_success,
			COUNT(*) FILTER (WHERE decision = 'ESCALATE') AS escalations
		FROM activity_log
		WHERE observation_type = $1 AND created_at > $2
		GROUP BY issue_type
		ORDER BY total DESC;`, models.ObservationIssue, since.UTC()); err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *ActivityRepository) RecentEscalations(limit int) ([]models.ActivityLogEntry, error) {
	var entries []models.ActivityLogEntry

	if err := r.conn.Select(&entries, "SELECT * FROM activity_log WHERE decision = 'ESCALATE' ORDER BY created_at DESC LIMIT $1;", limit); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *ActivityRepository) RecentFailures(limit int) ([]models.ActivityLogEntry, error) {
	var entries []models.ActivityLogEntry

	if err := r.conn.Select(&entries, "SELECT * FROM activity_log WHERE action_result = $1 ORDER BY created_at DESC LIMIT $2;",
		models.ActionResultFailed, limit); err != nil {
		return nil, err
	}

	return entries, nil
}
