package http

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port/mock"
	"go.uber.org/zap"
)

const testCarrierSecret = "whsec_test"

func newWebhookRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	svc := mock.NewMockService(ctrl)

	wh, err := NewWebhookHandler(svc, testCarrierSecret, zap.NewNop())
	assert.NoError(t, err)

	router := gin.New()
	router.POST("/webhooks/payment", wh.PaymentWebhook)
	router.POST("/webhooks/carrier", wh.CarrierWebhook)
	return router, svc
}

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testCarrierSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestPaymentWebhook(t *testing.T) {
	t.Run("acknowledges after reconciliation", func(t *testing.T) {
		router, svc := newWebhookRouter(t)
		svc.EXPECT().HandlePaymentEvent(gomock.Any(), "tr_8Xv92kq").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment",
			bytes.NewBufferString(`{"id":"tr_8Xv92kq"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty identifier rejected", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment",
			bytes.NewBufferString(`{"id":""}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment",
			bytes.NewBufferString(`{`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		router, svc := newWebhookRouter(t)
		svc.EXPECT().HandlePaymentEvent(gomock.Any(), "tr_down").Return(domain.ErrUpstreamProvider)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment",
			bytes.NewBufferString(`{"id":"tr_down"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestCarrierWebhook(t *testing.T) {
	body := []byte(`{"action":"parcel_shipped","parcel":{"id":"pcl_100","status":"en_route","tracking_number":"3STEST101"}}`)

	t.Run("verified event reaches the service", func(t *testing.T) {
		router, svc := newWebhookRouter(t)
		svc.EXPECT().HandleCarrierEvent(gomock.Any(), domain.CarrierEvent{
			Action:         domain.CarrierActionShipped,
			RawAction:      "parcel_shipped",
			ParcelID:       "pcl_100",
			RawStatus:      "en_route",
			TrackingNumber: "3STEST101",
		}).Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(body))
		req.Header.Set(carrierSignatureHeader, sign(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing signature rejected before parsing", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered body fails verification", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		tampered := []byte(`{"action":"parcel_delivered","parcel":{"id":"pcl_100"}}`)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(tampered))
		req.Header.Set(carrierSignatureHeader, sign(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-hex signature rejected", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(body))
		req.Header.Set(carrierSignatureHeader, "not-hex!")
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing parcel id rejected", func(t *testing.T) {
		router, _ := newWebhookRouter(t)

		noParcel := []byte(`{"action":"parcel_shipped","parcel":{}}`)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(noParcel))
		req.Header.Set(carrierSignatureHeader, sign(noParcel))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown action forwarded as unrecognized", func(t *testing.T) {
		router, svc := newWebhookRouter(t)
		unknown := []byte(`{"action":"parcel_teleported","parcel":{"id":"pcl_100"}}`)
		svc.EXPECT().HandleCarrierEvent(gomock.Any(), domain.CarrierEvent{
			Action:    domain.CarrierActionUnrecognized,
			RawAction: "parcel_teleported",
			ParcelID:  "pcl_100",
		}).Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/carrier", bytes.NewBuffer(unknown))
		req.Header.Set(carrierSignatureHeader, sign(unknown))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestVerifySignature(t *testing.T) {
	secret := []byte(testCarrierSecret)
	body := []byte(`{"action":"parcel_shipped"}`)

	assert.True(t, verifySignature(body, sign(body), secret))
	assert.False(t, verifySignature(body, sign(body), []byte("other")))
	assert.False(t, verifySignature(body, "", secret))
	assert.False(t, verifySignature(body, sign(body), nil))
}
