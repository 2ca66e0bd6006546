package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounter is the subset of a Redis client used by RedisLimiter.
type RedisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisLimiter counts attempts per key in fixed windows using INCR and EXPIRE.
type RedisLimiter struct {
	client RedisCounter
	prefix string
	limit  int
	window time.Duration
}

// NewRedisLimiter creates a Redis-backed limiter. Keys are stored as prefix+key.
func NewRedisLimiter(client RedisCounter, prefix string, limit int, window time.Duration) (*RedisLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{client: client, prefix: prefix, limit: limit, window: window}, nil
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if key == "" {
		key = "unknown"
	}
	fullKey := l.prefix + key

	count, err := l.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, fullKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("redis expire: %w", err)
		}
	}
	if count <= int64(l.limit) {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, fullKey).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis ttl: %w", err)
	}
	if ttl <= 0 {
		// Key without expiry, e.g. EXPIRE failed after INCR on an earlier call.
		if err := l.client.Expire(ctx, fullKey, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("redis expire: %w", err)
		}
		return false, l.window, nil
	}
	return false, ttl, nil
}
