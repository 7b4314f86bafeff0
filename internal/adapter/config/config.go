package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Payment   *Payment
	Carrier   *Carrier
	RateLimit *RateLimit
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Payment struct {
	HostString string `env:"PAYMENT_PROVIDER_ADDRESS"`
	APIKey     string `env:"PAYMENT_API_KEY"`
}

type Carrier struct {
	HostString    string `env:"CARRIER_PROVIDER_ADDRESS"`
	APIKey        string `env:"CARRIER_API_KEY"`
	WebhookSecret string `env:"CARRIER_WEBHOOK_SECRET"`
}

type RateLimit struct {
	// RedisURL switches the courtesy throttle to the shared Redis
	// counter; empty keeps the per-process in-memory one.
	RedisURL      string `env:"RATE_LIMIT_REDIS_URL"`
	Requests      int    `env:"RATE_LIMIT_REQUESTS"`
	WindowSeconds int    `env:"RATE_LIMIT_WINDOW_SECONDS"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var payment Payment
	var carrier Carrier
	var rl RateLimit
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&payment.HostString, "p", "", "Payment provider address")
	flag.StringVar(&carrier.HostString, "c", "", "Carrier provider address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.IntVar(&rl.Requests, "rl", 30, "Rate limit requests per window")
	flag.IntVar(&rl.WindowSeconds, "rw", 60, "Rate limit window, seconds")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&payment)
	if err != nil {
		return nil, fmt.Errorf("error parsing payment config: %w", err)
	}
	err = env.Parse(&carrier)
	if err != nil {
		return nil, fmt.Errorf("error parsing carrier config: %w", err)
	}
	err = env.Parse(&rl)
	if err != nil {
		return nil, fmt.Errorf("error parsing rate limit config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Payment:   &payment,
		Carrier:   &carrier,
		RateLimit: &rl,
		App:       &app,
	}

	return &config, nil
}
