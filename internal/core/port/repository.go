package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/vinoteca/wineshop/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	OrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	OrderByParcelID(ctx context.Context, parcelID string) (*domain.Order, error)

	// TransitionOrder moves the order from an expected prior status to a new
	// one as a single conditional update and records the audit event. It
	// reports false, without error, when the row was no longer in the
	// expected status, i.e. the losing side of a webhook race.
	TransitionOrder(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus, event domain.StatusEvent) (bool, error)

	UpdateTracking(ctx context.Context, id uuid.UUID, tracking domain.Tracking) error
	SetPaymentStatus(ctx context.Context, id uuid.UUID, providerStatus string) error
	MarkException(ctx context.Context, id uuid.UUID, note string) error
	ClearException(ctx context.Context, id uuid.UUID) error
}
