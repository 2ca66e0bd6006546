package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/phrazzld/swapi-gateway/internal/api/shared"
	"github.com/phrazzld/swapi-gateway/internal/platform/logger"
	"github.com/phrazzld/swapi-gateway/internal/platform/ratelimit"
	"github.com/phrazzld/swapi-gateway/internal/redact"
)

// LoginRateLimit limits requests per client IP with limiter. Limiter errors
// fail open and are logged.
func LoginRateLimit(limiter ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, retryAfter, err := limiter.Allow(r.Context(), clientIP(r))
			if err != nil {
				logger.FromContext(r.Context()).Error("login rate limiter failed, allowing request",
					"error", redact.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
					"Too many sign-in attempts. Please try again later.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr. chi's RealIP middleware has
// already replaced it with the forwarded address when one is present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
