package main

import (
	"context"
	"fmt"
	"time"

	"github.com/vinoteca/wineshop/internal/adapter/auth"
	"github.com/vinoteca/wineshop/internal/adapter/client/carrier"
	"github.com/vinoteca/wineshop/internal/adapter/client/payment"
	"github.com/vinoteca/wineshop/internal/adapter/config"
	"github.com/vinoteca/wineshop/internal/adapter/handler/http"
	"github.com/vinoteca/wineshop/internal/adapter/logger"
	"github.com/vinoteca/wineshop/internal/adapter/ratelimit"
	"github.com/vinoteca/wineshop/internal/adapter/storage"
	"github.com/vinoteca/wineshop/internal/adapter/storage/repository"
	"github.com/vinoteca/wineshop/internal/core/port"
	"github.com/vinoteca/wineshop/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	paymentClient, err := payment.NewClient(conf.Payment, log.Named("Payment"))
	if err != nil {
		log.Error("payment client creating error", zap.Error(err))
		return
	}
	carrierClient, err := carrier.NewClient(conf.Carrier, log.Named("Carrier"))
	if err != nil {
		log.Error("carrier client creating error", zap.Error(err))
		return
	}

	limiter, err := newRateLimiter(conf.RateLimit)
	if err != nil {
		log.Error("rate limiter creating error", zap.Error(err))
		return
	}

	taxes := service.NewTaxResolver()
	calc := service.NewCalculator(taxes)
	validator := service.NewValidator(calc)

	svc, err := service.NewService(repo, paymentClient, carrierClient, validator, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	shippingHandler, err := http.NewShippingHandler(svc, log.Named("Shipping handler"))
	if err != nil {
		log.Error("shipping handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(svc, conf.Carrier.WebhookSecret, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, limiter,
		orderHandler, shippingHandler, webhookHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}

func newRateLimiter(conf *config.RateLimit) (port.RateLimiter, error) {
	window := time.Duration(conf.WindowSeconds) * time.Second
	if conf.RedisURL != "" {
		return ratelimit.NewRedisLimiter(conf.RedisURL, conf.Requests, window)
	}
	return ratelimit.NewMemoryLimiter(conf.Requests, window), nil
}
