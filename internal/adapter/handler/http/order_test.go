package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port/mock"
	"go.uber.org/zap"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := mock.NewMockService(ctrl)

	oh, err := NewOrderHandler(svc, zap.NewNop())
	require.NoError(t, err)

	router := gin.New()
	router.POST("/orders", oh.CreateOrder)
	router.GET("/orders/:id", oh.GetOrder)
	return router, svc
}

func sampleOrder() *domain.Order {
	eur := func(cents int64) domain.Money { return domain.MustMoney(cents, domain.CurrencyEUR) }
	return &domain.Order{
		ID:     uuid.New(),
		Number: "VN-20260824-0000AB12",
		Status: domain.OrderStatusPending,
		Items: []domain.LineItem{
			{ProductID: "margaux-2019", Quantity: 2, UnitPrice: eur(1250)},
		},
		Totals: domain.OrderTotals{
			Subtotal:     eur(2500),
			VATAmount:    eur(500),
			VATRateBP:    2000,
			VATRuleID:    "fr-standard",
			ShippingCost: eur(950),
			Total:        eur(3950),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("created order echoed with server totals", func(t *testing.T) {
		router, svc := newOrderRouter(t)
		order := sampleOrder()
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(order, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders",
			bytes.NewBufferString(`{"customer":{"email":"claire@example.fr"}}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp OrderResp
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, order.Number, resp.Number)
		assert.Equal(t, "pending", resp.Status)
		assert.Equal(t, "0.2000", resp.Totals.VATRate)
	})

	t.Run("validation errors keyed by field path", func(t *testing.T) {
		router, svc := newOrderRouter(t)
		ve := domain.ValidationErrors{}
		ve.Add("customer.email", "is required")
		ve.Add("items", "must not be empty")
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, ve)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Errors, "customer.email")
		assert.Contains(t, resp.Errors, "items")
	})

	t.Run("totals mismatch maps to bad request", func(t *testing.T) {
		router, svc := newOrderRouter(t)
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTotalsMismatch)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected before the service", func(t *testing.T) {
		router, _ := newOrderRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router, svc := newOrderRouter(t)
		order := sampleOrder()
		svc.EXPECT().GetOrder(gomock.Any(), order.ID).Return(order, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		router, svc := newOrderRouter(t)
		id := uuid.New()
		svc.EXPECT().GetOrder(gomock.Any(), id).Return(nil, domain.ErrDataNotFound)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/"+id.String(), nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router, _ := newOrderRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
