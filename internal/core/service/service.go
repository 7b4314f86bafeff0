package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

// Service orchestrates the order pipeline: checkout validation and
// persistence, the shipping options feed, and reconciliation of the two
// webhook channels against the order state machine.
type Service struct {
	repo      port.Repository
	payment   port.PaymentProvider
	carrier   port.CarrierProvider
	validator *Validator
	logger    *zap.Logger
}

func NewService(
	repo port.Repository,
	payment port.PaymentProvider,
	carrier port.CarrierProvider,
	validator *Validator,
	logger *zap.Logger,
) (*Service, error) {
	return &Service{
		repo:      repo,
		payment:   payment,
		carrier:   carrier,
		validator: validator,
		logger:    logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, req *domain.CheckoutRequest) (*domain.Order, error) {
	order, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("read order", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

func (s *Service) ShippingOptions(ctx context.Context, countryCode string, items []domain.LineItem) ([]domain.CarrierOptions, error) {
	options, err := s.carrier.ShippingOptions(ctx, countryCode, items)
	if err != nil {
		s.logger.Error("shipping options feed", zap.String("country", countryCode), zap.Error(err))
		return nil, domain.ErrUpstreamProvider
	}
	return options, nil
}

// HandlePaymentEvent reconciles an order against the payment provider. The
// webhook only carries the payment identifier; the authoritative status is
// always re-fetched, never taken from the webhook body.
func (s *Service) HandlePaymentEvent(ctx context.Context, paymentID string) error {
	order, err := s.repo.OrderByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			// Acknowledge so the provider stops retrying.
			s.logger.Warn("payment webhook for unknown payment", zap.String("payment_id", paymentID))
			return nil
		}
		return err
	}

	providerStatus, err := s.payment.PaymentStatus(ctx, paymentID)
	if err != nil {
		s.logger.Error("payment status re-fetch", zap.String("payment_id", paymentID), zap.Error(err))
		return domain.ErrUpstreamProvider
	}

	if err := s.repo.SetPaymentStatus(ctx, order.ID, providerStatus); err != nil {
		s.logger.Error("cache payment status", zap.String("order", order.Number), zap.Error(err))
	}

	target, ok := domain.StatusForPaymentStatus(providerStatus)
	if !ok {
		s.logger.Info("payment status without mapped state",
			zap.String("order", order.Number), zap.String("provider_status", providerStatus))
		return nil
	}

	applied, err := s.transition(ctx, order, target, domain.ActorPaymentWebhook, providerStatus)
	if err != nil {
		return err
	}

	if applied && target == domain.OrderStatusConfirmed {
		// Best-effort handoff: a carrier outage must never roll back an
		// already-confirmed payment.
		s.handoffFulfillment(ctx, order)
	}

	return nil
}

// handoffFulfillment registers the parcel with the carrier and moves the
// order into processing. Every failure here is logged and retryable; none
// propagates to the payment webhook caller.
func (s *Service) handoffFulfillment(ctx context.Context, order *domain.Order) {
	parcel, err := s.carrier.CreateParcel(ctx, order)
	if err != nil {
		s.logger.Error("carrier order creation failed, order stays confirmed",
			zap.String("order", order.Number), zap.Error(err))
		return
	}

	tracking := domain.Tracking{
		ParcelID:       parcel.ID,
		TrackingNumber: parcel.TrackingNumber,
		TrackingURL:    parcel.TrackingURL,
		Carrier:        parcel.Carrier,
	}
	if err := s.repo.UpdateTracking(ctx, order.ID, tracking); err != nil {
		s.logger.Error("store tracking", zap.String("order", order.Number), zap.Error(err))
		return
	}

	if _, err := s.transitionFrom(ctx, order.ID, domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing, domain.ActorInternal, ""); err != nil {
		s.logger.Error("move order to processing", zap.String("order", order.Number), zap.Error(err))
	}
}

// HandleCarrierEvent applies one verified carrier webhook event to the
// order matched by parcel identifier. Unmatched parcels and unrecognized
// actions are acknowledged without effect.
func (s *Service) HandleCarrierEvent(ctx context.Context, event domain.CarrierEvent) error {
	order, err := s.repo.OrderByParcelID(ctx, event.ParcelID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Warn("carrier webhook for unknown parcel", zap.String("parcel_id", event.ParcelID))
			return nil
		}
		return err
	}

	if event.TrackingNumber != "" && event.TrackingNumber != order.Tracking.TrackingNumber {
		tracking := order.Tracking
		tracking.TrackingNumber = event.TrackingNumber
		tracking.TrackingURL = event.TrackingURL
		if event.Carrier != "" {
			tracking.Carrier = event.Carrier
		}
		if err := s.repo.UpdateTracking(ctx, order.ID, tracking); err != nil {
			s.logger.Error("update tracking", zap.String("order", order.Number), zap.Error(err))
		}
	}

	switch event.Action {
	case domain.CarrierActionShipped:
		_, err = s.transition(ctx, order, domain.OrderStatusShipped, domain.ActorCarrierWebhook, event.RawStatus)
		return err

	case domain.CarrierActionDelivered:
		_, err = s.transition(ctx, order, domain.OrderStatusDelivered, domain.ActorCarrierWebhook, event.RawStatus)
		return err

	case domain.CarrierActionStatusChanged:
		target, ok := domain.StatusForCarrierCode(event.RawStatus)
		if !ok {
			s.logger.Info("carrier status without mapped state",
				zap.String("order", order.Number), zap.String("carrier_status", event.RawStatus))
			return nil
		}
		_, err = s.transition(ctx, order, target, domain.ActorCarrierWebhook, event.RawStatus)
		return err

	case domain.CarrierActionException:
		if order.Status.Terminal() {
			s.logger.Info("exception for terminal order discarded", zap.String("order", order.Number))
			return nil
		}
		return s.repo.MarkException(ctx, order.ID, event.RawStatus)

	default:
		s.logger.Info("unrecognized carrier action",
			zap.String("parcel_id", event.ParcelID), zap.String("action", event.RawAction))
		return nil
	}
}

// transition applies one state-machine step to an order, honoring the
// no-op rules for duplicate, out-of-order and post-terminal events. A
// forward move also clears a standing exception annotation.
func (s *Service) transition(ctx context.Context, order *domain.Order,
	target domain.OrderStatus, actor domain.Actor, providerStatus string) (bool, error) {
	if !domain.ShouldApply(order.Status, target) {
		s.logger.Info("transition ignored",
			zap.String("order", order.Number),
			zap.String("from", string(order.Status)),
			zap.String("to", string(target)))
		return false, nil
	}

	applied, err := s.transitionFrom(ctx, order.ID, order.Status, target, actor, providerStatus)
	if err != nil {
		return false, err
	}
	if !applied {
		// A concurrent delivery won the conditional update; nothing to do.
		s.logger.Info("transition lost race",
			zap.String("order", order.Number), zap.String("to", string(target)))
		return false, nil
	}

	if order.Exception && !target.Terminal() {
		if err := s.repo.ClearException(ctx, order.ID); err != nil {
			s.logger.Error("clear exception", zap.String("order", order.Number), zap.Error(err))
		}
	}

	return true, nil
}

func (s *Service) transitionFrom(ctx context.Context, id uuid.UUID,
	from, to domain.OrderStatus, actor domain.Actor, providerStatus string) (bool, error) {
	event := domain.StatusEvent{
		OrderID:        id,
		From:           from,
		To:             to,
		Actor:          actor,
		ProviderStatus: providerStatus,
		CreatedAt:      time.Now().UTC(),
	}
	return s.repo.TransitionOrder(ctx, id, from, to, event)
}
