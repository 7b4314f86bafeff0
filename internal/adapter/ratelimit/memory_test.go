package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	clock := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3, time.Minute)
	l.now = func() time.Time { return clock }

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		assert.NoError(t, err)
		assert.True(t, ok, "request %d within the limit", i+1)
	}

	ok, err := l.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.False(t, ok)

	// Another client keeps its own window.
	ok, err = l.Allow(ctx, "10.0.0.2")
	assert.NoError(t, err)
	assert.True(t, ok)

	// The window resets after the period elapses.
	clock = clock.Add(time.Minute + time.Second)
	ok, err = l.Allow(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryLimiter_SweepsExpiredWindows(t *testing.T) {
	clock := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return clock }

	ctx := context.Background()
	for _, key := range []string{"a", "b", "c"} {
		_, err := l.Allow(ctx, key)
		assert.NoError(t, err)
	}
	assert.Len(t, l.windows, 3)

	clock = clock.Add(2 * time.Minute)
	_, err := l.Allow(ctx, "d")
	assert.NoError(t, err)

	// Expired windows for a, b and c were dropped on the way in.
	assert.Len(t, l.windows, 1)
}
