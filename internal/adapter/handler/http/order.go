package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req domain.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.CreateOrder(ctx, &req)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, toOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, toOrderResp(order))
}

type TotalsResp struct {
	Subtotal     domain.Money `json:"subtotal"`
	VATAmount    domain.Money `json:"vat_amount"`
	VATRate      string       `json:"vat_rate"`
	ShippingCost domain.Money `json:"shipping_cost"`
	Total        domain.Money `json:"total"`
}

type TrackingResp struct {
	TrackingNumber string `json:"tracking_number,omitempty"`
	TrackingURL    string `json:"tracking_url,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
}

type OrderResp struct {
	ID          string                `json:"id"`
	Number      string                `json:"number"`
	Status      string                `json:"status"`
	Items       []domain.LineItem     `json:"items"`
	Totals      TotalsResp            `json:"totals"`
	Shipping    domain.ShippingOption `json:"shipping_option"`
	Tracking    TrackingResp          `json:"tracking"`
	CreatedAt   time.Time             `json:"created_at"`
	ShippedAt   *time.Time            `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time            `json:"delivered_at,omitempty"`
}

func toOrderResp(o *domain.Order) OrderResp {
	rate := domain.TaxRate{RateBasisPoints: o.Totals.VATRateBP}
	return OrderResp{
		ID:     o.ID.String(),
		Number: o.Number,
		Status: string(o.Status),
		Items:  o.Items,
		Totals: TotalsResp{
			Subtotal:     o.Totals.Subtotal,
			VATAmount:    o.Totals.VATAmount,
			VATRate:      rate.Rate().String(),
			ShippingCost: o.Totals.ShippingCost,
			Total:        o.Totals.Total,
		},
		Shipping: o.ShippingOption,
		Tracking: TrackingResp{
			TrackingNumber: o.Tracking.TrackingNumber,
			TrackingURL:    o.Tracking.TrackingURL,
			Carrier:        o.Tracking.Carrier,
		},
		CreatedAt:   o.CreatedAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
	}
}
