package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrInvalidSignature:           http.StatusUnauthorized,

	domain.ErrBadRequest:              http.StatusBadRequest,
	domain.ErrInvalidAmount:           http.StatusBadRequest,
	domain.ErrCurrencyMismatch:        http.StatusBadRequest,
	domain.ErrUnsupportedJurisdiction: http.StatusBadRequest,
	domain.ErrTotalsMismatch:          http.StatusBadRequest,

	domain.ErrTooManyRequests:  http.StatusTooManyRequests,
	domain.ErrUpstreamProvider: http.StatusBadGateway,
	domain.ErrCalculation:      http.StatusInternalServerError,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleError resolves an error to a response. ValidationErrors get a
// field-addressed 400 body; everything else goes through the status map.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	var ve domain.ValidationErrors
	if errors.As(err, &ve) {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": ve})
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleAbort sends an error response and aborts the request with the specified status code
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithError(statusCode, err)
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
