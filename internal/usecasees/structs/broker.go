package structs

import "time"

// BrokerOrder is the broker's authoritative view of one order.
type BrokerOrder struct {
	ExternalID     string  `json:"orderId"`
	Symbol         string  `json:"symbol"`
	Status         string  `json:"status"`
	Side           string  `json:"side"`
	Quantity       float64 `json:"qty,string"`
	FilledQty      float64 `json:"filledQty,string"`
	FilledAvgPrice float64 `json:"filledAvgPrice,string"`
	UpdateTime     int64   `json:"updateTime"`
}

// BrokerHolding is one current holding reported by the broker.
type BrokerHolding struct {
	Symbol        string  `json:"symbol"`
	Qty           float64 `json:"qty,string"`
	AvgEntryPrice float64 `json:"avgEntryPrice,string"`
	Side          string  `json:"side"`
}

// BrokerSnapshot is one bounded-latency read of broker truth. A side that
// could not be fetched leaves its OK flag false; the other side stays usable.
type BrokerSnapshot struct {
	Orders     map[string]BrokerOrder
	Holdings   map[string]BrokerHolding
	OrdersOK   bool
	HoldingsOK bool
	OrdersErr  error
	HoldingsErr error
	FetchedAt  time.Time
}

type BrokerErr struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}
