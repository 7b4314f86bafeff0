package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/service"
)

func eur(cents int64) domain.Money {
	return domain.MustMoney(cents, domain.CurrencyEUR)
}

func shippingOpt(cents int64) *domain.ShippingOption {
	return &domain.ShippingOption{
		Code:  "std",
		Name:  "Standard",
		Price: eur(cents),
	}
}

func TestCalculator_Compute(t *testing.T) {
	calc := service.NewCalculator(service.NewTaxResolver())

	type computeTest struct {
		name         string
		items        []domain.LineItem
		shipping     *domain.ShippingOption
		country      string
		customerType domain.CustomerType
		expSubtotal  int64
		expVAT       int64
		expShipping  int64
		expTotal     int64
		expError     error
	}

	tests := []computeTest{
		{
			// 20% VAT, shipping taxable: base 5250, VAT 1050.
			name: "france with taxable shipping",
			items: []domain.LineItem{
				{ProductID: "margaux-2019", Quantity: 2, UnitPrice: eur(1250)},
				{ProductID: "chablis-2021", Quantity: 1, UnitPrice: eur(1800)},
			},
			shipping:     shippingOpt(950),
			country:      "FR",
			customerType: domain.CustomerConsumer,
			expSubtotal:  4300,
			expVAT:       1050,
			expShipping:  950,
			expTotal:     6300,
		},
		{
			// 7650 × 21% = 1606.5 rounds half-up to 1607.
			name: "netherlands rounding half-up",
			items: []domain.LineItem{
				{ProductID: "case-mixed", Quantity: 1, UnitPrice: eur(7650)},
			},
			shipping:     nil,
			country:      "NL",
			customerType: domain.CustomerConsumer,
			expSubtotal:  7650,
			expVAT:       1607,
			expShipping:  0,
			expTotal:     9257,
		},
		{
			name: "cross-border business reverse charge",
			items: []domain.LineItem{
				{ProductID: "riesling-2020", Quantity: 10, UnitPrice: eur(899)},
			},
			shipping:     shippingOpt(1500),
			country:      "DE",
			customerType: domain.CustomerBusiness,
			expSubtotal:  8990,
			expVAT:       0,
			expShipping:  1500,
			expTotal:     10490,
		},
		{
			name: "unsupported jurisdiction",
			items: []domain.LineItem{
				{ProductID: "margaux-2019", Quantity: 1, UnitPrice: eur(1250)},
			},
			country:      "US",
			customerType: domain.CustomerConsumer,
			expError:     domain.ErrUnsupportedJurisdiction,
		},
		{
			name: "non-normalized money rejected",
			items: []domain.LineItem{
				{ProductID: "margaux-2019", Quantity: 1},
			},
			country:      "FR",
			customerType: domain.CustomerConsumer,
			expError:     domain.ErrCalculation,
		},
		{
			name:         "empty cart rejected",
			items:        nil,
			country:      "FR",
			customerType: domain.CustomerConsumer,
			expError:     domain.ErrCalculation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			totals, err := calc.Compute(test.items, test.shipping, test.country, test.customerType)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.expSubtotal, totals.Subtotal.MinorUnits())
			assert.Equal(t, test.expVAT, totals.VATAmount.MinorUnits())
			assert.Equal(t, test.expShipping, totals.ShippingCost.MinorUnits())
			assert.Equal(t, test.expTotal, totals.Total.MinorUnits())

			// The parts always reconcile with the grand total.
			sum := totals.Subtotal.MinorUnits() + totals.VATAmount.MinorUnits() + totals.ShippingCost.MinorUnits()
			diff := totals.Total.MinorUnits() - sum
			assert.LessOrEqual(t, diff, int64(domain.TotalsTolerance))
			assert.GreaterOrEqual(t, diff, int64(-domain.TotalsTolerance))
		})
	}
}

func TestTaxResolver_Resolve(t *testing.T) {
	taxes := service.NewTaxResolver()

	rate, err := taxes.Resolve("fr", domain.CustomerConsumer)
	assert.NoError(t, err)
	assert.Equal(t, int64(2000), rate.RateBasisPoints)
	assert.Equal(t, "fr-standard", rate.RuleID)
	assert.True(t, rate.ShippingTaxable)

	rate, err = taxes.Resolve("BE", domain.CustomerBusiness)
	assert.NoError(t, err)
	assert.Equal(t, "eu-reverse-charge", rate.RuleID)
	assert.Equal(t, int64(0), rate.RateBasisPoints)
	assert.False(t, rate.ShippingTaxable)

	_, err = taxes.Resolve("XX", domain.CustomerConsumer)
	assert.ErrorIs(t, err, domain.ErrUnsupportedJurisdiction)
}
