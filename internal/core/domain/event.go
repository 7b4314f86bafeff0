package domain

// CarrierAction is the closed set of carrier webhook actions. Anything the
// carrier sends that is not in the mapping table parses to
// CarrierActionUnrecognized and is acknowledged without effect.
type CarrierAction string

const (
	CarrierActionStatusChanged CarrierAction = "status_changed"
	CarrierActionShipped       CarrierAction = "shipped"
	CarrierActionDelivered     CarrierAction = "delivered"
	CarrierActionException     CarrierAction = "exception"
	CarrierActionUnrecognized  CarrierAction = "unrecognized"
)

var carrierActionMap = map[string]CarrierAction{
	"parcel_status_changed": CarrierActionStatusChanged,
	"parcel_shipped":        CarrierActionShipped,
	"parcel_delivered":      CarrierActionDelivered,
	"parcel_exception":      CarrierActionException,
}

// ParseCarrierAction maps a wire action string to the internal variant.
func ParseCarrierAction(raw string) CarrierAction {
	if a, ok := carrierActionMap[raw]; ok {
		return a
	}
	return CarrierActionUnrecognized
}

// CarrierEvent is a parsed carrier webhook. RawAction and RawStatus keep
// the provider's wording for the audit trail; logic runs on Action and the
// status mapping table only.
type CarrierEvent struct {
	Action         CarrierAction
	RawAction      string
	ParcelID       string
	RawStatus      string
	TrackingNumber string
	TrackingURL    string
	Carrier        string
}

// carrierStatusMap translates carrier status codes reported on a plain
// status change into internal order states. Maintained as data; codes
// missing here leave the order where it is.
var carrierStatusMap = map[string]OrderStatus{
	"announced":        OrderStatusProcessing,
	"handed_to_sorter": OrderStatusProcessing,
	"en_route":         OrderStatusShipped,
	"out_for_delivery": OrderStatusShipped,
	"delivered":        OrderStatusDelivered,
}

// StatusForCarrierCode returns the mapped internal status for a carrier
// status code, if one is configured.
func StatusForCarrierCode(code string) (OrderStatus, bool) {
	s, ok := carrierStatusMap[code]
	return s, ok
}

// paymentStatusMap translates authoritative payment-provider statuses into
// internal order states. The webhook body's own status field is never
// consulted; the status fed here comes from a provider re-fetch.
var paymentStatusMap = map[string]OrderStatus{
	"paid":     OrderStatusConfirmed,
	"failed":   OrderStatusPaymentFailed,
	"expired":  OrderStatusPaymentFailed,
	"canceled": OrderStatusPaymentFailed,
}

// StatusForPaymentStatus returns the mapped internal status for a payment
// provider status, if one is configured. Pending-ish provider statuses are
// deliberately unmapped: the order stays pending until a final status.
func StatusForPaymentStatus(status string) (OrderStatus, bool) {
	s, ok := paymentStatusMap[status]
	return s, ok
}
