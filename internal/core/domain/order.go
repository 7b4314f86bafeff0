package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusRefunded      OrderStatus = "refunded"
)

// statusRank orders the forward path. Side exits are not ranked; they have
// their own reachability rules.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

var terminalStatuses = map[OrderStatus]bool{
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
	OrderStatusRefunded:  true,
}

func (s OrderStatus) Valid() bool {
	if _, ok := statusRank[s]; ok {
		return true
	}
	return terminalStatuses[s] || s == OrderStatusPaymentFailed
}

func (s OrderStatus) Terminal() bool {
	return terminalStatuses[s]
}

// ShouldApply decides whether moving from current to target is a real
// transition. It returns false for self, backward and post-terminal moves:
// those are silent no-ops, which is what makes duplicated and reordered
// webhook deliveries safe to replay.
func ShouldApply(current, target OrderStatus) bool {
	if !target.Valid() || target == current {
		return false
	}
	if current.Terminal() {
		return false
	}
	if target == OrderStatusCancelled || target == OrderStatusRefunded {
		return true
	}
	if target == OrderStatusPaymentFailed {
		return current == OrderStatusPending
	}
	// A failed payment may still be retried and confirmed.
	if current == OrderStatusPaymentFailed {
		return target == OrderStatusConfirmed
	}
	return statusRank[target] > statusRank[current]
}

// Actor identifies what triggered a status transition.
type Actor string

const (
	ActorInternal       Actor = "internal"
	ActorPaymentWebhook Actor = "payment_webhook"
	ActorCarrierWebhook Actor = "carrier_webhook"
)

// StatusEvent is one audit-trail row: who moved the order, when, and the
// raw provider status text that caused it. The raw text is never used to
// drive logic, only kept for reconciliation.
type StatusEvent struct {
	OrderID        uuid.UUID
	From           OrderStatus
	To             OrderStatus
	Actor          Actor
	ProviderStatus string
	CreatedAt      time.Time
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

// OrderTotals is the frozen money snapshot taken at order creation.
// Invariants: Subtotal = Σ quantity×unit price exactly, and
// |Total − (Subtotal + VATAmount + ShippingCost)| ≤ 1 minor unit.
type OrderTotals struct {
	Subtotal     Money  `json:"subtotal"`
	VATAmount    Money  `json:"vat_amount"`
	VATRateBP    int64  `json:"vat_rate_bp"`
	VATRuleID    string `json:"vat_rule_id"`
	ShippingCost Money  `json:"shipping_cost"`
	Total        Money  `json:"total"`
}

// TotalsTolerance is the allowed drift, in minor units, between the grand
// total and the sum of its parts, absorbing per-line rounding.
const TotalsTolerance = 1

type Address struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

type Customer struct {
	Email string       `json:"email"`
	Phone string       `json:"phone"`
	Type  CustomerType `json:"type"`
}

// Tracking is the cached carrier position of the shipment.
type Tracking struct {
	ParcelID       string
	TrackingNumber string
	TrackingURL    string
	Carrier        string
}

// Order is the persisted aggregate. Created once by checkout validation,
// afterwards mutated only through status transitions; line items and
// totals are immutable snapshots. Orders are never deleted.
type Order struct {
	ID              uuid.UUID
	Number          string
	Status          OrderStatus
	Customer        Customer
	ShippingAddress Address
	BillingAddress  Address
	Items           []LineItem
	Totals          OrderTotals
	ShippingOption  ShippingOption

	PaymentID     string
	PaymentStatus string

	Tracking Tracking

	Exception     bool
	ExceptionNote string

	FulfillmentNotes string

	CreatedAt   time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}
