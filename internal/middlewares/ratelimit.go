package middlewares

import (
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
)

// RateLimitMiddleware limits requests per client IP with a Redis counter:
// INCR on every request, EXPIRE on the first one of a window. Applied to
// the register and login routes as a brute-force guard. A nil client
// disables the limiter, and Redis errors let the request through rather
// than failing closed on auth traffic.
func RateLimitMiddleware(rdb *redis.Client, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rdb == nil {
				next.ServeHTTP(w, r)
				return
			}

			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate_limit:" + ip

			count, err := rdb.Incr(r.Context(), key).Result()
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				rdb.Expire(r.Context(), key, window)
			}

			if count > limit {
				logger.Log.Infow("rate limit exceeded", "ip", ip, "count", count)
				writeError(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
