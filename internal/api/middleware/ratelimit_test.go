package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	keys       []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.retryAfter, s.err
}

func TestLoginRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allowed", func(t *testing.T) {
		lim := &stubLimiter{allowed: true}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
		req.RemoteAddr = "10.0.0.7:53211"
		rec := httptest.NewRecorder()

		LoginRateLimit(lim)(ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"10.0.0.7"}, lim.keys)
	})

	t.Run("denied sets Retry-After", func(t *testing.T) {
		lim := &stubLimiter{allowed: false, retryAfter: 1500 * time.Millisecond}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
		req.RemoteAddr = "203.0.113.9"
		rec := httptest.NewRecorder()

		LoginRateLimit(lim)(ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("Retry-After"))
		assert.Equal(t, []string{"203.0.113.9"}, lim.keys)
	})

	t.Run("denied with zero wait", func(t *testing.T) {
		lim := &stubLimiter{allowed: false}
		rec := httptest.NewRecorder()
		LoginRateLimit(lim)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	})

	t.Run("limiter failure allows request", func(t *testing.T) {
		lim := &stubLimiter{err: errors.New("redis down")}
		rec := httptest.NewRecorder()
		LoginRateLimit(lim)(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
