package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryLimiter keeps one token bucket per key. Buckets refill at
// limit/window and hold at most limit tokens. Idle buckets are dropped after
// two windows.
type MemoryLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewMemoryLimiter creates an in-process limiter.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	if key == "" {
		key = "unknown"
	}
	now := l.now()

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		every := rate.Every(l.window / time.Duration(l.limit))
		b = &bucket{limiter: rate.NewLimiter(every, l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.cleanupLocked(now)
	l.mu.Unlock()

	r := b.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay, nil
	}
	return true, 0, nil
}

func (l *MemoryLimiter) cleanupLocked(now time.Time) {
	cutoff := now.Add(-2 * l.window)
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
