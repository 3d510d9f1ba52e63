package middlewares

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	c "casaflow/internal/cache"
	apierrors "casaflow/internal/errors"
	"casaflow/internal/helpers"

	"go.uber.org/zap"
)

// RateLimit is the per-minute request throttle shared across instances via
// the cache. It is distinct from the waitlist attempt-window limiter, which
// bounds one action over a much longer window.
func RateLimit(cache c.ICache, requestsPerMinute int, trustedProxies []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if cache == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r, trustedProxies)
			retryAfter, err := cache.GetRateLimit(ip, requestsPerMinute)
			if err != nil {
				zap.L().Warn("Rate limit check failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				helpers.RespondWithError(w, 429, apierrors.ErrRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// ClientIP resolves the caller address, honoring X-Forwarded-For only when
// the direct peer is a trusted proxy.
func ClientIP(r *http.Request, trustedProxies []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return host
	}

	for _, proxy := range trustedProxies {
		if proxy == host {
			parts := strings.Split(forwarded, ",")
			return strings.TrimSpace(parts[0])
		}
	}

	return host
}
