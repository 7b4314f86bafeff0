package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the per-process fixed-window counter. Non-durable by
// design: it resets on restart, which is acceptable for a courtesy
// throttle.
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	limit   int
	period  time.Duration
	now     func() time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*window),
		limit:   limit,
		period:  period,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &window{count: 1, resetAt: now.Add(l.period)}
		l.sweep(now)
		return true, nil
	}

	if w.count >= l.limit {
		return false, nil
	}
	w.count++
	return true, nil
}

// sweep drops expired windows so the map does not grow with one entry per
// client forever. Called opportunistically under the lock.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
