package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinoteca/wineshop/internal/core/domain"
)

func TestShouldApply(t *testing.T) {
	tests := []struct {
		name string
		from domain.OrderStatus
		to   domain.OrderStatus
		exp  bool
	}{
		{name: "pending to confirmed", from: domain.OrderStatusPending, to: domain.OrderStatusConfirmed, exp: true},
		{name: "confirmed to processing", from: domain.OrderStatusConfirmed, to: domain.OrderStatusProcessing, exp: true},
		{name: "skip intermediate states", from: domain.OrderStatusConfirmed, to: domain.OrderStatusDelivered, exp: true},
		{name: "self transition is a no-op", from: domain.OrderStatusShipped, to: domain.OrderStatusShipped, exp: false},
		{name: "backward move is a no-op", from: domain.OrderStatusShipped, to: domain.OrderStatusConfirmed, exp: false},
		{name: "shipped to pending forbidden", from: domain.OrderStatusShipped, to: domain.OrderStatusPending, exp: false},
		{name: "cancel before delivery", from: domain.OrderStatusProcessing, to: domain.OrderStatusCancelled, exp: true},
		{name: "refund from shipped", from: domain.OrderStatusShipped, to: domain.OrderStatusRefunded, exp: true},
		{name: "delivered is terminal", from: domain.OrderStatusDelivered, to: domain.OrderStatusCancelled, exp: false},
		{name: "cancelled is terminal", from: domain.OrderStatusCancelled, to: domain.OrderStatusConfirmed, exp: false},
		{name: "refunded is terminal", from: domain.OrderStatusRefunded, to: domain.OrderStatusShipped, exp: false},
		{name: "payment failure from pending", from: domain.OrderStatusPending, to: domain.OrderStatusPaymentFailed, exp: true},
		{name: "payment failure after confirmation ignored", from: domain.OrderStatusConfirmed, to: domain.OrderStatusPaymentFailed, exp: false},
		{name: "retried payment after failure", from: domain.OrderStatusPaymentFailed, to: domain.OrderStatusConfirmed, exp: true},
		{name: "failed payment cannot ship", from: domain.OrderStatusPaymentFailed, to: domain.OrderStatusShipped, exp: false},
		{name: "unknown target ignored", from: domain.OrderStatusPending, to: domain.OrderStatus("lost"), exp: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, domain.ShouldApply(test.from, test.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, domain.OrderStatusDelivered.Terminal())
	assert.True(t, domain.OrderStatusCancelled.Terminal())
	assert.True(t, domain.OrderStatusRefunded.Terminal())
	assert.False(t, domain.OrderStatusPaymentFailed.Terminal())
	assert.False(t, domain.OrderStatusShipped.Terminal())
}

func TestParseCarrierAction(t *testing.T) {
	assert.Equal(t, domain.CarrierActionShipped, domain.ParseCarrierAction("parcel_shipped"))
	assert.Equal(t, domain.CarrierActionDelivered, domain.ParseCarrierAction("parcel_delivered"))
	assert.Equal(t, domain.CarrierActionException, domain.ParseCarrierAction("parcel_exception"))
	assert.Equal(t, domain.CarrierActionStatusChanged, domain.ParseCarrierAction("parcel_status_changed"))
	assert.Equal(t, domain.CarrierActionUnrecognized, domain.ParseCarrierAction("parcel_teleported"))
	assert.Equal(t, domain.CarrierActionUnrecognized, domain.ParseCarrierAction(""))
}

func TestStatusMappingTables(t *testing.T) {
	s, ok := domain.StatusForPaymentStatus("paid")
	assert.True(t, ok)
	assert.Equal(t, domain.OrderStatusConfirmed, s)

	for _, failed := range []string{"failed", "expired", "canceled"} {
		s, ok := domain.StatusForPaymentStatus(failed)
		assert.True(t, ok)
		assert.Equal(t, domain.OrderStatusPaymentFailed, s)
	}

	_, ok = domain.StatusForPaymentStatus("open")
	assert.False(t, ok)

	s, ok = domain.StatusForCarrierCode("en_route")
	assert.True(t, ok)
	assert.Equal(t, domain.OrderStatusShipped, s)

	_, ok = domain.StatusForCarrierCode("weather_delay")
	assert.False(t, ok)
}
