package domain

type LastMile string

const (
	LastMileServicePoint LastMile = "service_point"
	LastMileHomeDelivery LastMile = "home_delivery"
)

// Characteristics describes a shipping option. Every field is always
// populated on options handed to callers; the carrier adapter fills gaps
// in a degraded upstream feed with carrier-class defaults.
type Characteristics struct {
	IsTracked         bool     `json:"is_tracked"`
	RequiresSignature bool     `json:"requires_signature"`
	IsExpress         bool     `json:"is_express"`
	Insurance         Money    `json:"insurance"`
	LastMile          LastMile `json:"last_mile"`
	Restrictions      []string `json:"restrictions"`
}

type ShippingOption struct {
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	CarrierCode     string          `json:"carrier_code"`
	CarrierName     string          `json:"carrier_name"`
	Price           Money           `json:"price"`
	Characteristics Characteristics `json:"characteristics"`
}

// CarrierOptions groups the shipping options one carrier offers for a
// destination.
type CarrierOptions struct {
	CarrierCode string           `json:"carrier_code"`
	CarrierName string           `json:"carrier_name"`
	Options     []ShippingOption `json:"options"`
}

// Parcel is the carrier provider's shipment record for an order. The
// carrier remains the system of record; these fields are a cached copy.
type Parcel struct {
	ID             string
	TrackingNumber string
	TrackingURL    string
	Carrier        string
}
