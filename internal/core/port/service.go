package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/vinoteca/wineshop/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	ShippingOptions(ctx context.Context, countryCode string, items []domain.LineItem) ([]domain.CarrierOptions, error)

	// HandlePaymentEvent reconciles the order referenced by a payment
	// webhook against the provider's authoritative status.
	HandlePaymentEvent(ctx context.Context, paymentID string) error
	// HandleCarrierEvent applies one parsed carrier webhook event.
	HandleCarrierEvent(ctx context.Context, event domain.CarrierEvent) error
}
