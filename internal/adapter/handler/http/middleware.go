package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vinoteca/wineshop/internal/core/domain"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const customerPayloadKey = "customer_payload"

func authCheck(tokenService port.TokenService, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			h.handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			h.handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			h.handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(customerPayloadKey, payload)

		ctx.Next()
	}
}

// rateLimit applies the injectable courtesy throttle keyed by client IP.
// A limiter failure lets the request through: the throttle is not a
// security control and must never take the storefront down with it.
func rateLimit(limiter port.RateLimiter, h *Handler) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, err := limiter.Allow(ctx, ctx.ClientIP())
		if err != nil {
			h.logger.Warn("rate limiter unavailable", zap.Error(err))
			ctx.Next()
			return
		}
		if !allowed {
			h.handleAbort(ctx, domain.ErrTooManyRequests)
			return
		}
		ctx.Next()
	}
}
