package service

import (
	"github.com/vinoteca/wineshop/internal/core/domain"
)

// Calculator produces the frozen OrderTotals snapshot for a cart. Pure
// function over its inputs plus the tax table; all arithmetic is integer
// minor units.
type Calculator struct {
	taxes *TaxResolver
}

func NewCalculator(taxes *TaxResolver) *Calculator {
	return &Calculator{taxes: taxes}
}

// Compute calculates {subtotal, vat, shipping, total}. shippingOption may
// be nil for orders that need no physical delivery. Inputs must already be
// normalized Money; anything else fails with ErrCalculation to stop a
// major-unit value from slipping in twice-converted.
func (c *Calculator) Compute(
	items []domain.LineItem,
	shippingOption *domain.ShippingOption,
	destinationCountry string,
	customerType domain.CustomerType,
) (domain.OrderTotals, error) {
	if len(items) == 0 {
		return domain.OrderTotals{}, domain.ErrCalculation
	}

	rate, err := c.taxes.Resolve(destinationCountry, customerType)
	if err != nil {
		return domain.OrderTotals{}, err
	}

	currency := items[0].UnitPrice.Currency()
	subtotal, err := domain.NewMoney(0, currency)
	if err != nil {
		return domain.OrderTotals{}, domain.ErrCalculation
	}

	for _, item := range items {
		if !item.UnitPrice.IsNormalized() || item.UnitPrice.Currency() != currency {
			return domain.OrderTotals{}, domain.ErrCalculation
		}
		line, err := item.UnitPrice.MulQuantity(item.Quantity)
		if err != nil {
			return domain.OrderTotals{}, domain.ErrCalculation
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return domain.OrderTotals{}, domain.ErrCalculation
		}
	}

	shippingCost := domain.MustMoney(0, currency)
	if shippingOption != nil {
		if !shippingOption.Price.IsNormalized() || shippingOption.Price.Currency() != currency {
			return domain.OrderTotals{}, domain.ErrCalculation
		}
		shippingCost = shippingOption.Price
	}

	taxableBase := subtotal
	if rate.ShippingTaxable {
		taxableBase, err = subtotal.Add(shippingCost)
		if err != nil {
			return domain.OrderTotals{}, domain.ErrCalculation
		}
	}

	vatAmount, err := rate.ApplyTo(taxableBase)
	if err != nil {
		return domain.OrderTotals{}, err
	}

	total, err := subtotal.Add(vatAmount)
	if err != nil {
		return domain.OrderTotals{}, domain.ErrCalculation
	}
	total, err = total.Add(shippingCost)
	if err != nil {
		return domain.OrderTotals{}, domain.ErrCalculation
	}

	return domain.OrderTotals{
		Subtotal:     subtotal,
		VATAmount:    vatAmount,
		VATRateBP:    rate.RateBasisPoints,
		VATRuleID:    rate.RuleID,
		ShippingCost: shippingCost,
		Total:        total,
	}, nil
}
