package service

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vinoteca/wineshop/internal/core/domain"
)

// Validator turns an untrusted checkout payload into an Order in pending
// state, or into field-addressed validation errors. The client-submitted
// totals are cross-checked against an independent recomputation; a
// mismatch fails closed, the server never silently substitutes its own
// numbers for a manipulated total.
type Validator struct {
	calc *Calculator
}

func NewValidator(calc *Calculator) *Validator {
	return &Validator{calc: calc}
}

func (v *Validator) Validate(req *domain.CheckoutRequest) (*domain.Order, error) {
	ve := domain.ValidationErrors{}

	currency := req.Currency
	if currency == "" {
		currency = domain.CurrencyEUR
	}
	if currency != domain.CurrencyEUR {
		ve.Add("currency", "unsupported currency")
	}

	customerType := validateCustomer(ve, req.Customer)
	validateAddress(ve, "shipping_address", req.ShippingAddress)
	if req.BillingAddress != nil {
		validateAddress(ve, "billing_address", *req.BillingAddress)
	}

	items := validateItems(ve, req.Items, currency)
	shippingOption := validateShippingOption(ve, req.ShippingOption, req.Items, currency)

	if req.PaymentID == "" {
		ve.Add("payment_id", "is required")
	}

	if ve.Any() {
		return nil, ve
	}

	totals, err := v.calc.Compute(items, shippingOption, req.ShippingAddress.CountryCode, customerType)
	if err != nil {
		return nil, err
	}
	if !totalsMatch(totals, req.Totals) {
		return nil, domain.ErrTotalsMismatch
	}

	billing := req.ShippingAddress
	if req.BillingAddress != nil {
		billing = *req.BillingAddress
	}

	order := &domain.Order{
		ID:     uuid.New(),
		Number: newOrderNumber(),
		Status: domain.OrderStatusPending,
		Customer: domain.Customer{
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
			Type:  customerType,
		},
		ShippingAddress: toAddress(req.ShippingAddress),
		BillingAddress:  toAddress(billing),
		Items:           items,
		Totals:          totals,
		PaymentID:       req.PaymentID,
		CreatedAt:       time.Now().UTC(),
	}
	if shippingOption != nil {
		order.ShippingOption = *shippingOption
	}

	return order, nil
}

func toAddress(a domain.CheckoutAddress) domain.Address {
	return domain.Address(a)
}

func validateCustomer(ve domain.ValidationErrors, c domain.CheckoutCustomer) domain.CustomerType {
	if c.Email == "" {
		ve.Add("customer.email", "is required")
	} else if !strings.Contains(c.Email, "@") {
		ve.Add("customer.email", "is not a valid email address")
	}

	switch c.Type {
	case "", string(domain.CustomerConsumer):
		return domain.CustomerConsumer
	case string(domain.CustomerBusiness):
		return domain.CustomerBusiness
	default:
		ve.Add("customer.type", "must be consumer or business")
		return domain.CustomerConsumer
	}
}

func validateAddress(ve domain.ValidationErrors, path string, a domain.CheckoutAddress) {
	if a.Name == "" {
		ve.Add(path+".name", "is required")
	}
	if a.Street == "" {
		ve.Add(path+".street", "is required")
	}
	if a.PostalCode == "" {
		ve.Add(path+".postal_code", "is required")
	}
	if a.City == "" {
		ve.Add(path+".city", "is required")
	}
	if len(a.CountryCode) != 2 {
		ve.Add(path+".country_code", "must be a two-letter ISO country code")
	}
}

func validateItems(ve domain.ValidationErrors, raw []domain.CheckoutItem, currency domain.Currency) []domain.LineItem {
	if len(raw) == 0 {
		ve.Add("items", "must not be empty")
		return nil
	}

	items := make([]domain.LineItem, 0, len(raw))
	for i, it := range raw {
		path := fmt.Sprintf("items.%d", i)
		if it.ProductID == "" {
			ve.Add(path+".product_id", "is required")
		}
		if it.Quantity <= 0 {
			ve.Add(path+".quantity", "must be a positive integer")
		}
		price, err := domain.NewMoney(it.UnitPriceCents, currency)
		if err != nil {
			ve.Add(path+".unit_price_cents", "must be a non-negative amount in minor units")
			continue
		}
		items = append(items, domain.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
		})
	}
	return items
}

func validateShippingOption(
	ve domain.ValidationErrors,
	raw *domain.CheckoutShippingOption,
	items []domain.CheckoutItem,
	currency domain.Currency,
) *domain.ShippingOption {
	if raw == nil {
		if !allNoShipping(items) {
			ve.Add("shipping_option", "is required for orders with shippable items")
		}
		return nil
	}

	if raw.Code == "" {
		ve.Add("shipping_option.code", "is required")
	}
	if raw.Name == "" {
		ve.Add("shipping_option.name", "is required")
	}
	price, err := domain.NewMoney(raw.PriceCents, currency)
	if err != nil {
		ve.Add("shipping_option.price_cents", "must be a non-negative amount in minor units")
		return nil
	}

	option := &domain.ShippingOption{
		Code:        raw.Code,
		Name:        raw.Name,
		CarrierCode: raw.CarrierCode,
		CarrierName: raw.CarrierName,
		Price:       price,
		Characteristics: domain.Characteristics{
			Insurance:    domain.MustMoney(0, currency),
			LastMile:     domain.LastMileHomeDelivery,
			Restrictions: []string{},
		},
	}

	if c := raw.Characteristics; c != nil {
		if c.IsTracked != nil {
			option.Characteristics.IsTracked = *c.IsTracked
		}
		if c.RequiresSignature != nil {
			option.Characteristics.RequiresSignature = *c.RequiresSignature
		}
		if c.IsExpress != nil {
			option.Characteristics.IsExpress = *c.IsExpress
		}
		if c.InsuranceCents != nil {
			ins, err := domain.NewMoney(*c.InsuranceCents, currency)
			if err != nil {
				ve.Add("shipping_option.characteristics.insurance_cents", "must be a non-negative amount in minor units")
			} else {
				option.Characteristics.Insurance = ins
			}
		}
		if c.LastMile != nil {
			switch domain.LastMile(*c.LastMile) {
			case domain.LastMileServicePoint, domain.LastMileHomeDelivery:
				option.Characteristics.LastMile = domain.LastMile(*c.LastMile)
			default:
				ve.Add("shipping_option.characteristics.last_mile", "must be service_point or home_delivery")
			}
		}
		if c.Restrictions != nil {
			option.Characteristics.Restrictions = c.Restrictions
		}
	}

	return option
}

func allNoShipping(items []domain.CheckoutItem) bool {
	for _, it := range items {
		if !it.NoShipping {
			return false
		}
	}
	return len(items) > 0
}

// totalsMatch compares the client's totals with the recomputed snapshot
// field by field, each within the rounding tolerance.
func totalsMatch(computed domain.OrderTotals, submitted domain.CheckoutTotals) bool {
	within := func(a domain.Money, b int64) bool {
		d := a.MinorUnits() - b
		return d >= -domain.TotalsTolerance && d <= domain.TotalsTolerance
	}
	return within(computed.Subtotal, submitted.SubtotalCents) &&
		within(computed.VATAmount, submitted.VATAmountCents) &&
		within(computed.ShippingCost, submitted.ShippingCostCents) &&
		within(computed.Total, submitted.TotalCents)
}

// newOrderNumber builds a human-readable, globally unique order number,
// e.g. "VN-20260824-9F21B3C4".
func newOrderNumber() string {
	u := uuid.New()
	return fmt.Sprintf("VN-%s-%08X",
		time.Now().UTC().Format("20060102"),
		binary.BigEndian.Uint32(u[0:4]))
}
