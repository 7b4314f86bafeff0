package domain

// CheckoutRequest is the raw order-creation payload as submitted by the
// storefront. Nothing in it is trusted until the validator has cross-checked
// it; all money fields are explicit minor-unit integers.
type CheckoutRequest struct {
	Customer        CheckoutCustomer        `json:"customer"`
	ShippingAddress CheckoutAddress         `json:"shipping_address"`
	BillingAddress  *CheckoutAddress        `json:"billing_address,omitempty"`
	Items           []CheckoutItem          `json:"items"`
	ShippingOption  *CheckoutShippingOption `json:"shipping_option,omitempty"`
	Totals          CheckoutTotals          `json:"totals"`
	Currency        Currency                `json:"currency"`
	PaymentID       string                  `json:"payment_id"`
}

type CheckoutCustomer struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

type CheckoutAddress struct {
	Name        string `json:"name"`
	Street      string `json:"street"`
	HouseNumber string `json:"house_number"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
	CountryCode string `json:"country_code"`
}

type CheckoutItem struct {
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	// NoShipping marks product classes that need no physical delivery
	// (gift vouchers); an order of only such items may omit the
	// shipping option.
	NoShipping bool `json:"no_shipping,omitempty"`
}

type CheckoutShippingOption struct {
	Code            string                   `json:"code"`
	Name            string                   `json:"name"`
	CarrierCode     string                   `json:"carrier_code"`
	CarrierName     string                   `json:"carrier_name"`
	PriceCents      int64                    `json:"price_cents"`
	Characteristics *CheckoutCharacteristics `json:"characteristics,omitempty"`
}

// CheckoutCharacteristics mirrors Characteristics with optional fields so
// the validator can tell "absent" from "false".
type CheckoutCharacteristics struct {
	IsTracked         *bool    `json:"is_tracked,omitempty"`
	RequiresSignature *bool    `json:"requires_signature,omitempty"`
	IsExpress         *bool    `json:"is_express,omitempty"`
	InsuranceCents    *int64   `json:"insurance_cents,omitempty"`
	LastMile          *string  `json:"last_mile,omitempty"`
	Restrictions      []string `json:"restrictions,omitempty"`
}

// CheckoutTotals is the client's own computation, submitted only so the
// server can cross-check it against an independent recomputation.
type CheckoutTotals struct {
	SubtotalCents     int64 `json:"subtotal_cents"`
	VATAmountCents    int64 `json:"vat_amount_cents"`
	ShippingCostCents int64 `json:"shipping_cost_cents"`
	TotalCents        int64 `json:"total_cents"`
}
