package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vinoteca/wineshop/internal/adapter/storage"
	"github.com/vinoteca/wineshop/internal/core/domain"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

var orderColumns = []string{
	"id", "number", "status",
	"customer_email", "customer_phone", "customer_type",
	"shipping_address", "billing_address",
	"subtotal", "vat_amount", "vat_rate_bp", "vat_rule_id", "shipping_cost", "total", "currency",
	"shipping_option",
	"payment_id", "payment_status",
	"parcel_id", "tracking_number", "tracking_url", "carrier",
	"exception", "exception_note", "fulfillment_notes",
	"created_at", "shipped_at", "delivered_at",
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	shippingAddr, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return nil, err
	}
	billingAddr, err := json.Marshal(order.BillingAddress)
	if err != nil {
		return nil, err
	}
	shippingOpt, err := json.Marshal(order.ShippingOption)
	if err != nil {
		return nil, err
	}

	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Insert("orders").
			Columns(orderColumns...).
			Values(
				order.ID, order.Number, order.Status,
				order.Customer.Email, order.Customer.Phone, order.Customer.Type,
				shippingAddr, billingAddr,
				order.Totals.Subtotal.MinorUnits(),
				order.Totals.VATAmount.MinorUnits(),
				order.Totals.VATRateBP,
				order.Totals.VATRuleID,
				order.Totals.ShippingCost.MinorUnits(),
				order.Totals.Total.MinorUnits(),
				order.Totals.Total.Currency(),
				shippingOpt,
				order.PaymentID, order.PaymentStatus,
				order.Tracking.ParcelID, order.Tracking.TrackingNumber,
				order.Tracking.TrackingURL, order.Tracking.Carrier,
				order.Exception, order.ExceptionNote, order.FulfillmentNotes,
				order.CreatedAt, order.ShippedAt, order.DeliveredAt,
			)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		for i, item := range order.Items {
			itemSt := r.db.QueryBuilder.Insert("order_items").
				Columns("order_id", "position", "product_id", "quantity", "unit_price").
				Values(order.ID, i, item.ProductID, item.Quantity, item.UnitPrice.MinorUnits())

			sql, args, err := itemSt.ToSql()
			if err != nil {
				return err
			}
			if _, err = tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.readOrderWhere(ctx, sq.Eq{"id": id})
}

func (r *Repository) OrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	if paymentID == "" {
		return nil, domain.ErrDataNotFound
	}
	return r.readOrderWhere(ctx, sq.Eq{"payment_id": paymentID})
}

func (r *Repository) OrderByParcelID(ctx context.Context, parcelID string) (*domain.Order, error) {
	if parcelID == "" {
		return nil, domain.ErrDataNotFound
	}
	return r.readOrderWhere(ctx, sq.Eq{"parcel_id": parcelID})
}

func (r *Repository) readOrderWhere(ctx context.Context, where sq.Eq) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		order        domain.Order
		shippingAddr []byte
		billingAddr  []byte
		shippingOpt  []byte
		subtotal     int64
		vatAmount    int64
		shippingCost int64
		total        int64
		currency     domain.Currency
	)

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID, &order.Number, &order.Status,
		&order.Customer.Email, &order.Customer.Phone, &order.Customer.Type,
		&shippingAddr, &billingAddr,
		&subtotal, &vatAmount, &order.Totals.VATRateBP, &order.Totals.VATRuleID,
		&shippingCost, &total, &currency,
		&shippingOpt,
		&order.PaymentID, &order.PaymentStatus,
		&order.Tracking.ParcelID, &order.Tracking.TrackingNumber,
		&order.Tracking.TrackingURL, &order.Tracking.Carrier,
		&order.Exception, &order.ExceptionNote, &order.FulfillmentNotes,
		&order.CreatedAt, &order.ShippedAt, &order.DeliveredAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(shippingAddr, &order.ShippingAddress); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(billingAddr, &order.BillingAddress); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(shippingOpt, &order.ShippingOption); err != nil {
		return nil, err
	}

	if order.Totals.Subtotal, err = domain.NewMoney(subtotal, currency); err != nil {
		return nil, fmt.Errorf("stored subtotal: %w", err)
	}
	if order.Totals.VATAmount, err = domain.NewMoney(vatAmount, currency); err != nil {
		return nil, fmt.Errorf("stored vat amount: %w", err)
	}
	if order.Totals.ShippingCost, err = domain.NewMoney(shippingCost, currency); err != nil {
		return nil, fmt.Errorf("stored shipping cost: %w", err)
	}
	if order.Totals.Total, err = domain.NewMoney(total, currency); err != nil {
		return nil, fmt.Errorf("stored total: %w", err)
	}

	if order.Items, err = r.readItems(ctx, order.ID, currency); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) readItems(ctx context.Context, orderID uuid.UUID, currency domain.Currency) ([]domain.LineItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_id", "quantity", "unit_price").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		var (
			item      domain.LineItem
			unitPrice int64
		)
		if err := rows.Scan(&item.ProductID, &item.Quantity, &unitPrice); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = domain.NewMoney(unitPrice, currency); err != nil {
			return nil, fmt.Errorf("stored unit price: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// TransitionOrder is the optimistic concurrency guard of the pipeline: a
// single conditional UPDATE moves the row only if it is still in the
// expected prior status, so racing webhook deliveries resolve to exactly
// one applied transition. The audit event is written in the same
// transaction.
func (r *Repository) TransitionOrder(ctx context.Context, id uuid.UUID,
	from, to domain.OrderStatus, event domain.StatusEvent) (bool, error) {
	applied := false

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("status", to).
			Where(sq.Eq{"id": id, "status": from})

		now := time.Now().UTC()
		switch to {
		case domain.OrderStatusShipped:
			statement = statement.Set("shipped_at", now)
		case domain.OrderStatusDelivered:
			statement = statement.Set("delivered_at", now)
		}

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		applied = true

		eventSt := r.db.QueryBuilder.Insert("status_events").
			Columns("order_id", "from_status", "to_status", "actor", "provider_status", "created_at").
			Values(event.OrderID, event.From, event.To, event.Actor, event.ProviderStatus, event.CreatedAt)

		sql, args, err = eventSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return false, err
	}

	return applied, nil
}

func (r *Repository) UpdateTracking(ctx context.Context, id uuid.UUID, tracking domain.Tracking) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("parcel_id", tracking.ParcelID).
		Set("tracking_number", tracking.TrackingNumber).
		Set("tracking_url", tracking.TrackingURL).
		Set("carrier", tracking.Carrier).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, statement)
}

func (r *Repository) SetPaymentStatus(ctx context.Context, id uuid.UUID, providerStatus string) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("payment_status", providerStatus).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, statement)
}

func (r *Repository) MarkException(ctx context.Context, id uuid.UUID, note string) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("exception", true).
		Set("exception_note", note).
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, statement)
}

func (r *Repository) ClearException(ctx context.Context, id uuid.UUID) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("exception", false).
		Set("exception_note", "").
		Where(sq.Eq{"id": id})

	return r.execOne(ctx, statement)
}

func (r *Repository) execOne(ctx context.Context, statement sq.UpdateBuilder) error {
	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
