package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CanAdvance(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"created to submitted", OrderStatusCreated, OrderStatusSubmitted, true},
		{"submitted to accepted", OrderStatusSubmitted, OrderStatusAccepted, true},
		{"submitted to filled", OrderStatusSubmitted, OrderStatusFilled, true},
		{"accepted to partial", OrderStatusAccepted, OrderStatusPartialFill, true},
		{"partial to filled", OrderStatusPartialFill, OrderStatusFilled, true},
		{"submitted to cancelled", OrderStatusSubmitted, OrderStatusCancelled, true},
		{"accepted to rejected", OrderStatusAccepted, OrderStatusRejected, true},
		{"accepted to expired", OrderStatusAccepted, OrderStatusExpired, true},

		{"never backward", OrderStatusAccepted, OrderStatusSubmitted, false},
		{"never same", OrderStatusSubmitted, OrderStatusSubmitted, false},
		{"filled is terminal", OrderStatusFilled, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusFilled, false},
		{"expired is terminal", OrderStatusExpired, OrderStatusSubmitted, false},
		{"created cannot cancel", OrderStatusCreated, OrderStatusCancelled, false},
		{"partial cannot expire", OrderStatusPartialFill, OrderStatusExpired, false},
		{"unknown from", "LIMBO", OrderStatusFilled, false},
		{"unknown to", OrderStatusSubmitted, "LIMBO", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CanAdvance(c.from, c.to))
		})
	}
}

func Test_IsTerminalOrderStatus(t *testing.T) {
	for _, status := range []string{OrderStatusFilled, OrderStatusCancelled, OrderStatusRejected, OrderStatusExpired} {
		assert.True(t, IsTerminalOrderStatus(status))
	}

	for _, status := range []string{OrderStatusCreated, OrderStatusSubmitted, OrderStatusAccepted, OrderStatusPartialFill} {
		assert.False(t, IsTerminalOrderStatus(status))
	}
}

func Test_IsTerminalPositionStatus(t *testing.T) {
	assert.True(t, IsTerminalPositionStatus(PositionStatusClosed))
	assert.True(t, IsTerminalPositionStatus(PositionStatusCancelled))
	assert.False(t, IsTerminalPositionStatus(PositionStatusPending))
	assert.False(t, IsTerminalPositionStatus(PositionStatusOpen))
}
