package port

import "context"

//go:generate mockgen -source=ratelimit.go -destination=mock/ratelimit.go -package=mock

// RateLimiter is the injectable courtesy throttle on public endpoints.
// Implementations may be per-process or distributed; callers only see
// allow/deny.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
