package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is the distributed variant of the courtesy throttle,
// sharing one fixed-window counter between processes.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	period time.Duration
}

func NewRedisLimiter(redisURL string, limit int, period time.Duration) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisLimiter{
		client: redis.NewClient(opts),
		limit:  limit,
		period: period,
	}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	// NX keeps the window anchored at the first request.
	pipe.ExpireNX(ctx, redisKey, l.period)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
