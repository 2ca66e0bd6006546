package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(3, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "attempt %d", i+1)
	}

	allowed, retryAfter, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.InDelta(t, (20 * time.Second).Seconds(), retryAfter.Seconds(), 0.5)

	allowed, _, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, allowed, "other keys are independent")

	now = now.Add(20 * time.Second)
	allowed, _, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, allowed, "one token refills per window/limit")
}

func TestMemoryLimiterDropsIdleBuckets(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _, _ = l.Allow(context.Background(), "a")
	now = now.Add(3 * time.Minute)
	_, _, _ = l.Allow(context.Background(), "b")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.buckets, "a")
	assert.Contains(t, l.buckets, "b")
}

// fakeRedis implements RedisCounter with an in-memory map.
type fakeRedis struct {
	mu      sync.Mutex
	counts  map[string]int64
	ttls    map[string]time.Duration
	incrErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{counts: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewIntCmd(ctx, "incr", key)
	if f.incrErr != nil {
		cmd.SetErr(f.incrErr)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeRedis) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[key] = expiration
	cmd := redis.NewBoolCmd(ctx, "expire", key)
	cmd.SetVal(true)
	return cmd
}

func (f *fakeRedis) TTL(ctx context.Context, key string) *redis.DurationCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewDurationCmd(ctx, time.Second, "ttl", key)
	if ttl, ok := f.ttls[key]; ok {
		cmd.SetVal(ttl - 15*time.Second)
	} else {
		cmd.SetVal(-1)
	}
	return cmd
}

func TestRedisLimiter(t *testing.T) {
	fake := newFakeRedis()
	l, err := NewRedisLimiter(fake, "test:", 2, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		allowed, _, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.Equal(t, time.Minute, fake.ttls["test:1.2.3.4"])

	allowed, retryAfter, err := l.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 45*time.Second, retryAfter)
}

func TestRedisLimiterRepairsMissingExpiry(t *testing.T) {
	fake := newFakeRedis()
	fake.counts["test:k"] = 5
	l, err := NewRedisLimiter(fake, "test:", 2, time.Minute)
	require.NoError(t, err)

	allowed, retryAfter, err := l.Allow(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)
	assert.Equal(t, time.Minute, fake.ttls["test:k"])
}

func TestRedisLimiterError(t *testing.T) {
	fake := newFakeRedis()
	fake.incrErr = errors.New("connection refused")
	l, err := NewRedisLimiter(fake, "test:", 2, time.Minute)
	require.NoError(t, err)

	_, _, err = l.Allow(context.Background(), "k")
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewRedisLimiterValidation(t *testing.T) {
	_, err := NewRedisLimiter(nil, "p:", 1, time.Minute)
	assert.Error(t, err)
	_, err = NewRedisLimiter(newFakeRedis(), "p:", 0, time.Minute)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	l, closeFn, err := New(config.RateLimitConfig{LoginLimit: 0}, nil)
	require.NoError(t, err)
	assert.IsType(t, Unlimited{}, l)
	assert.NoError(t, closeFn())

	l, _, err = New(config.RateLimitConfig{LoginLimit: 5, LoginWindow: time.Minute}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, l)

	l, closeFn, err = New(config.RateLimitConfig{LoginLimit: 5, RedisAddr: "127.0.0.1:6379"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisLimiter{}, l)
	assert.NoError(t, closeFn())
}
