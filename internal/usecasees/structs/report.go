package structs

import "time"

const (
	PassStatusOK       = "OK"
	PassStatusWarning  = "WARNING"
	PassStatusCritical = "CRITICAL"
	PassStatusError    = "ERROR"
)

// PassReport is the machine-readable summary returned to the scheduler/CLI
// after one reconciliation pass.
type PassReport struct {
	SessionID   string        `json:"session_id"`
	IssuesFound int           `json:"issues_found"`
	Critical    int           `json:"critical"`
	Warning     int           `json:"warning"`
	AutoFixed   int           `json:"auto_fixed"`
	Escalated   int           `json:"escalated"`
	Deferred    int           `json:"deferred"`
	Failed      int           `json:"failed"`
	Status      string        `json:"status"`
	Duration    time.Duration `json:"duration"`
}

// ExitCode maps a pass status to the process exit code contract.
func (r *PassReport) ExitCode() int {
	switch r.Status {
	case PassStatusOK:
		return 0
	case PassStatusWarning:
		return 1
	case PassStatusCritical:
		return 2
	}

	return 3
}
