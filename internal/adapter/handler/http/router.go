package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vinoteca/wineshop/internal/adapter/config"
	"github.com/vinoteca/wineshop/internal/core/port"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	limiter port.RateLimiter,
	orderHandler *OrderHandler,
	shippingHandler *ShippingHandler,
	webhookHandler *WebhookHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	base := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, base))
			orders.POST("", rateLimit(limiter, base), orderHandler.CreateOrder)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		api.POST("/shipping/options", rateLimit(limiter, base), shippingHandler.ShippingOptions)

		webhooks := api.Group("/webhooks")
		{
			webhooks.POST("/payment", webhookHandler.PaymentWebhook)
			webhooks.POST("/carrier", webhookHandler.CarrierWebhook)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
