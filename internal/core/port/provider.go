package port

import (
	"context"

	"github.com/vinoteca/wineshop/internal/core/domain"
)

//go:generate mockgen -source=provider.go -destination=mock/provider.go -package=mock

// PaymentProvider re-fetches the authoritative payment status from the
// payment provider. Webhook bodies only carry a pointer; status always
// comes from here.
type PaymentProvider interface {
	PaymentStatus(ctx context.Context, paymentID string) (string, error)
}

// CarrierProvider is the shipping provider's API surface used by the
// pipeline: the options feed for checkout and parcel registration after
// payment confirmation.
type CarrierProvider interface {
	ShippingOptions(ctx context.Context, countryCode string, items []domain.LineItem) ([]domain.CarrierOptions, error)
	CreateParcel(ctx context.Context, order *domain.Order) (*domain.Parcel, error)
}
