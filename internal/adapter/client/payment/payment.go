package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vinoteca/wineshop/internal/adapter/config"
	"go.uber.org/zap"
)

// Client re-fetches authoritative payment state from the payment
// provider. Webhook payloads are treated as pointers only; every status
// decision goes through this client.
type Client struct {
	host       string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.Payment, log *zap.Logger) (*Client, error) {
	return &Client{
		host:       cfg.HostString,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}, nil
}

type paymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

const fetchAttempts = 3

// PaymentStatus fetches the provider's current status for a payment.
// Transient provider failures are retried with backoff; the operation is
// a pure read, so retrying is always safe.
func (c *Client) PaymentStatus(ctx context.Context, paymentID string) (string, error) {
	var lastErr error

	for attempt := 0; attempt < fetchAttempts; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(time.Duration(attempt) * time.Second)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return "", ctx.Err()
			}
		}

		status, retryable, err := c.fetch(ctx, paymentID)
		if err == nil {
			return status, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
		c.logger.Warn("payment status fetch failed, retrying",
			zap.String("payment_id", paymentID), zap.Int("attempt", attempt+1), zap.Error(err))
	}

	return "", lastErr
}

func (c *Client) fetch(ctx context.Context, paymentID string) (status string, retryable bool, err error) {
	requestStr := c.host + "/v2/payments/" + paymentID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return "", false, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", false, fmt.Errorf("payment %s not found at provider", paymentID)
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", true, fmt.Errorf("provider error %v for request %s", resp.StatusCode, requestStr)
	default:
		return "", false, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", false, fmt.Errorf("error on response decode: %w", err)
	}
	if result.Status == "" {
		return "", false, fmt.Errorf("provider returned payment %s without status", paymentID)
	}

	return result.Status, false, nil
}
