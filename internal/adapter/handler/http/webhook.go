package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

const carrierSignatureHeader = "X-Carrier-Signature"

type WebhookHandler struct {
	Handler
	service       port.Service
	carrierSecret []byte
}

func NewWebhookHandler(service port.Service, carrierSecret string, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler:       *NewHandler(logger),
		service:       service,
		carrierSecret: []byte(carrierSecret),
	}, nil
}

type paymentWebhookReq struct {
	ID string `json:"id"`
}

// PaymentWebhook handles the payment provider's notification. The body
// carries only a payment identifier; the authoritative status is
// re-fetched by the service. Unknown payments still get a 200 so the
// provider stops retrying.
func (wh *WebhookHandler) PaymentWebhook(ctx *gin.Context) {
	var req paymentWebhookReq
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == "" {
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	if err := wh.service.HandlePaymentEvent(ctx, req.ID); err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}

type carrierWebhookReq struct {
	Action string           `json:"action"`
	Parcel carrierParcelReq `json:"parcel"`
}

type carrierParcelReq struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	Carrier        string `json:"carrier"`
}

// CarrierWebhook verifies the signature over the raw body before anything
// is parsed, then maps the payload onto the closed event set. Unknown
// actions are acknowledged as no-ops.
func (wh *WebhookHandler) CarrierWebhook(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}
	defer ctx.Request.Body.Close()

	if !verifySignature(body, ctx.GetHeader(carrierSignatureHeader), wh.carrierSecret) {
		wh.handleError(ctx, domain.ErrInvalidSignature)
		return
	}

	var req carrierWebhookReq
	if err := json.Unmarshal(body, &req); err != nil || req.Parcel.ID == "" {
		wh.handleError(ctx, domain.ErrBadRequest)
		return
	}

	event := domain.CarrierEvent{
		Action:         domain.ParseCarrierAction(req.Action),
		RawAction:      req.Action,
		ParcelID:       req.Parcel.ID,
		RawStatus:      req.Parcel.Status,
		TrackingNumber: req.Parcel.TrackingNumber,
		TrackingURL:    req.Parcel.TrackingURL,
		Carrier:        req.Parcel.Carrier,
	}

	if err := wh.service.HandleCarrierEvent(ctx, event); err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}

// verifySignature checks the hex-encoded HMAC-SHA256 of the raw request
// body. hmac.Equal keeps the comparison constant-time.
func verifySignature(body []byte, signature string, secret []byte) bool {
	if signature == "" || len(secret) == 0 {
		return false
	}

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}
