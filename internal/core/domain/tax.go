package domain

import "github.com/govalues/decimal"

type CustomerType string

const (
	CustomerConsumer CustomerType = "consumer"
	CustomerBusiness CustomerType = "business"
)

// TaxRate is the resolved VAT position for one (country, customer type)
// pair. RateBasisPoints keeps the rate in integer basis points (2100 =
// 21%) so VAT math never touches floating point.
type TaxRate struct {
	CountryCode     string
	CustomerType    CustomerType
	RateBasisPoints int64
	RuleID          string
	ShippingTaxable bool
}

// Rate returns the rate as a decimal fraction, display use only.
func (t TaxRate) Rate() decimal.Decimal {
	return decimal.MustNew(t.RateBasisPoints, 4)
}

// ApplyTo computes the VAT amount over a taxable base in minor units,
// rounding half-up at the minor-unit boundary.
func (t TaxRate) ApplyTo(taxableBase Money) (Money, error) {
	if !taxableBase.IsNormalized() {
		return Money{}, ErrCalculation
	}
	vat := (taxableBase.MinorUnits()*t.RateBasisPoints + 5000) / 10000
	return NewMoney(vat, taxableBase.Currency())
}
