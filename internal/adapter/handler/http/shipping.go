package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	Handler
	service port.Service
}

func NewShippingHandler(service port.Service, logger *zap.Logger) (*ShippingHandler, error) {
	return &ShippingHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type shippingOptionsReq struct {
	Country string                `json:"country"`
	Items   []domain.CheckoutItem `json:"items"`
}

// ShippingOptions returns the carriers and options available for a
// destination. Every option carries a fully populated characteristics
// record, degraded upstream feed or not.
func (sh *ShippingHandler) ShippingOptions(ctx *gin.Context) {
	var req shippingOptionsReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		sh.handleError(ctx, domain.ErrBadRequest)
		return
	}
	if len(req.Country) != 2 {
		sh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	items := make([]domain.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	options, err := sh.service.ShippingOptions(ctx, req.Country, items)
	if err != nil {
		sh.handleError(ctx, err)
		return
	}

	sh.handleSuccess(ctx, options)
}
