package structs

import "time"

const (
	IssueOrderNotFound       = "ORDER_NOT_FOUND"
	IssueStuckOrder          = "STUCK_ORDER"
	IssueOrderStatusMismatch = "ORDER_STATUS_MISMATCH"
	IssuePhantomPosition     = "PHANTOM_POSITION"
	IssueQtyMismatch         = "QTY_MISMATCH"
	IssueOrphanPosition      = "ORPHAN_POSITION"
	IssueCycleStale          = "CYCLE_STALE"
	IssueConnectivity        = "CONNECTIVITY"

	SeverityInfo     = "INFO"
	SeverityWarning  = "WARNING"
	SeverityCritical = "CRITICAL"

	ActionAutoFix  = "AUTO_FIX"
	ActionEscalate = "ESCALATE"
	ActionMonitor  = "MONITOR"
	ActionDefer    = "DEFER"
)

// Evidence is the broker-observed snapshot an issue was classified from.
// Remediations are constructed from these fields and nothing else.
type Evidence struct {
	LocalStatus    string    `json:"local_status,omitempty"`
	BrokerStatus   string    `json:"broker_status,omitempty"`
	LocalQty       float64   `json:"local_qty,omitempty"`
	BrokerQty      float64   `json:"broker_qty,omitempty"`
	FilledQty      float64   `json:"filled_qty,omitempty"`
	FilledAvgPrice float64   `json:"filled_avg_price,omitempty"`
	Symbol         string    `json:"symbol,omitempty"`
	ExternalID     string    `json:"external_id,omitempty"`
	OrderAge       string    `json:"order_age,omitempty"`
	LastActivity   time.Time `json:"last_activity,omitempty"`
	Detail         string    `json:"detail,omitempty"`
}

type Issue struct {
	Type        string       `json:"type"`
	Severity    string       `json:"severity"`
	Subject     string       `json:"subject"`
	Evidence    Evidence     `json:"evidence"`
	Remediation *Remediation `json:"remediation,omitempty"`
}

type Decision struct {
	Action    string `json:"action"`
	Reasoning string `json:"reasoning"`
	Priority  string `json:"priority,omitempty"`
}
