package structs

import "fmt"

// RemediationKind tags the closed set of local-ledger mutations the engine may
// apply. There is intentionally no kind that reaches the broker: the executor
// can only ever dispatch on these variants, so a broker-mutating fix is not
// representable.
type RemediationKind string

const (
	RemediationExpireOrder  RemediationKind = "EXPIRE_ORDER"
	RemediationAdoptStatus  RemediationKind = "ADOPT_ORDER_STATUS"
	RemediationClosePos     RemediationKind = "CLOSE_POSITION"
	RemediationSyncQuantity RemediationKind = "SYNC_QUANTITY"
)

type Remediation struct {
	Kind       RemediationKind `json:"kind"`
	OrderID    string          `json:"order_id,omitempty"`
	PositionID string          `json:"position_id,omitempty"`

	// Broker-observed values to adopt.
	Status         string  `json:"status,omitempty"`
	FilledQty      float64 `json:"filled_qty,omitempty"`
	FilledAvgPrice float64 `json:"filled_avg_price,omitempty"`
	Quantity       float64 `json:"quantity,omitempty"`
	Reason         string  `json:"reason,omitempty"`
}

func (r *Remediation) Target() string {
	switch r.Kind {
	case RemediationExpireOrder, RemediationAdoptStatus:
		return fmt.Sprintf("order:%s", r.OrderID)
	case RemediationClosePos, RemediationSyncQuantity:
		return fmt.Sprintf("position:%s", r.PositionID)
	}

	return ""
}
