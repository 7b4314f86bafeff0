package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/service"
)

func validCheckout() *domain.CheckoutRequest {
	return &domain.CheckoutRequest{
		Customer: domain.CheckoutCustomer{
			Email: "claire@example.fr",
			Type:  "consumer",
		},
		ShippingAddress: domain.CheckoutAddress{
			Name:        "Claire Fontaine",
			Street:      "Rue de la Paix",
			HouseNumber: "12",
			PostalCode:  "75002",
			City:        "Paris",
			CountryCode: "FR",
		},
		Items: []domain.CheckoutItem{
			{ProductID: "margaux-2019", Quantity: 2, UnitPriceCents: 1250},
			{ProductID: "chablis-2021", Quantity: 1, UnitPriceCents: 1800},
		},
		ShippingOption: &domain.CheckoutShippingOption{
			Code:        "std-home",
			Name:        "Standard home delivery",
			CarrierCode: "postnl",
			CarrierName: "PostNL",
			PriceCents:  950,
		},
		Totals: domain.CheckoutTotals{
			SubtotalCents:     4300,
			VATAmountCents:    1050,
			ShippingCostCents: 950,
			TotalCents:        6300,
		},
		PaymentID: "tr_8Xv92kq",
	}
}

func newValidator() *service.Validator {
	return service.NewValidator(service.NewCalculator(service.NewTaxResolver()))
}

func TestValidator_ValidRequest(t *testing.T) {
	order, err := newValidator().Validate(validCheckout())
	assert.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.Number, "VN-"))
	assert.Len(t, order.Items, 2)
	assert.Equal(t, int64(4300), order.Totals.Subtotal.MinorUnits())
	assert.Equal(t, int64(1050), order.Totals.VATAmount.MinorUnits())
	assert.Equal(t, int64(6300), order.Totals.Total.MinorUnits())
	assert.Equal(t, "tr_8Xv92kq", order.PaymentID)
	// Billing falls back to the shipping address when absent.
	assert.Equal(t, order.ShippingAddress, order.BillingAddress)
}

func TestValidator_TotalsMismatchFailsClosed(t *testing.T) {
	req := validCheckout()
	req.Totals.TotalCents = 5300 // manipulated client total

	order, err := newValidator().Validate(req)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domain.ErrTotalsMismatch)
}

func TestValidator_TotalsWithinTolerance(t *testing.T) {
	req := validCheckout()
	req.Totals.VATAmountCents = 1049
	req.Totals.TotalCents = 6299

	order, err := newValidator().Validate(req)
	assert.NoError(t, err)
	// The server snapshot keeps its own numbers, not the client's.
	assert.Equal(t, int64(1050), order.Totals.VATAmount.MinorUnits())
	assert.Equal(t, int64(6300), order.Totals.Total.MinorUnits())
}

func TestValidator_FieldErrors(t *testing.T) {
	req := validCheckout()
	req.Customer.Email = "not-an-email"
	req.ShippingAddress.City = ""
	req.Items[0].Quantity = 0
	req.ShippingOption.Code = ""

	order, err := newValidator().Validate(req)
	assert.Nil(t, order)

	var ve domain.ValidationErrors
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve, "customer.email")
	assert.Contains(t, ve, "shipping_address.city")
	assert.Contains(t, ve, "items.0.quantity")
	assert.Contains(t, ve, "shipping_option.code")
}

func TestValidator_EmptyItems(t *testing.T) {
	req := validCheckout()
	req.Items = nil

	_, err := newValidator().Validate(req)
	var ve domain.ValidationErrors
	assert.True(t, errors.As(err, &ve))
	assert.Contains(t, ve, "items")
}

func TestValidator_ShippingOption(t *testing.T) {
	t.Run("required for shippable items", func(t *testing.T) {
		req := validCheckout()
		req.ShippingOption = nil

		_, err := newValidator().Validate(req)
		var ve domain.ValidationErrors
		assert.True(t, errors.As(err, &ve))
		assert.Contains(t, ve, "shipping_option")
	})

	t.Run("optional for no-shipping product class", func(t *testing.T) {
		req := validCheckout()
		req.Items = []domain.CheckoutItem{
			{ProductID: "gift-voucher-50", Quantity: 1, UnitPriceCents: 5000, NoShipping: true},
		}
		req.ShippingOption = nil
		req.Totals = domain.CheckoutTotals{
			SubtotalCents:  5000,
			VATAmountCents: 1000,
			TotalCents:     6000,
		}

		order, err := newValidator().Validate(req)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), order.Totals.ShippingCost.MinorUnits())
	})

	t.Run("characteristics type-checked when supplied", func(t *testing.T) {
		req := validCheckout()
		badMile := "drone"
		req.ShippingOption.Characteristics = &domain.CheckoutCharacteristics{LastMile: &badMile}

		_, err := newValidator().Validate(req)
		var ve domain.ValidationErrors
		assert.True(t, errors.As(err, &ve))
		assert.Contains(t, ve, "shipping_option.characteristics.last_mile")
	})

	t.Run("characteristics defaults filled when absent", func(t *testing.T) {
		req := validCheckout()
		tracked := true
		req.ShippingOption.Characteristics = &domain.CheckoutCharacteristics{IsTracked: &tracked}

		order, err := newValidator().Validate(req)
		assert.NoError(t, err)
		chars := order.ShippingOption.Characteristics
		assert.True(t, chars.IsTracked)
		assert.Equal(t, domain.LastMileHomeDelivery, chars.LastMile)
		assert.True(t, chars.Insurance.IsNormalized())
		assert.NotNil(t, chars.Restrictions)
	})
}

func TestValidator_UnsupportedDestination(t *testing.T) {
	req := validCheckout()
	req.ShippingAddress.CountryCode = "US"

	_, err := newValidator().Validate(req)
	assert.ErrorIs(t, err, domain.ErrUnsupportedJurisdiction)
}
