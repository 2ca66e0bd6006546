package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/swapi-gateway/internal/config"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether another attempt for key is allowed. When it is
// not, retryAfter says how long the caller should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// New builds the login limiter described by cfg. It returns a Redis-backed
// limiter when RedisAddr is set, an in-memory limiter otherwise, and a
// limiter that allows everything when LoginLimit is not positive.
func New(cfg config.RateLimitConfig, logger *slog.Logger) (Limiter, func() error, error) {
	noop := func() error { return nil }
	if cfg.LoginLimit <= 0 {
		return Unlimited{}, noop, nil
	}
	window := cfg.LoginWindow
	if window <= 0 {
		window = time.Minute
	}

	if cfg.RedisAddr == "" {
		return NewMemoryLimiter(cfg.LoginLimit, window), noop, nil
	}

	timeout := cfg.RedisTimeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	if logger != nil {
		logger.Info("using redis login rate limiter", "addr", cfg.RedisAddr)
	}
	limiter, err := NewRedisLimiter(client, "swapi-gateway:login:", cfg.LoginLimit, window)
	if err != nil {
		_ = client.Close()
		return nil, noop, fmt.Errorf("failed to create redis limiter: %w", err)
	}
	return limiter, client.Close, nil
}

// Unlimited allows every attempt.
type Unlimited struct{}

// Allow implements Limiter.
func (Unlimited) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}
