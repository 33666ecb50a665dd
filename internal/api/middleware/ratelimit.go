package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sindico-pro/sindicopro-sub/internal/metrics"
)

const rateLimitWindow = time.Minute

// RateLimiter enforces a fixed-window per-client request limit backed by
// Redis, sharing the session store's connection pool and key namespace.
type RateLimiter struct {
	client *redis.Client
	logger zerolog.Logger
	prefix string
	limit  int
	now    func() time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per minute
// per client IP. Keys live under the given namespace prefix. A limit of
// zero disables limiting.
func NewRateLimiter(client *redis.Client, logger zerolog.Logger, prefix string, limit int) *RateLimiter {
	return &RateLimiter{client: client, logger: logger, prefix: prefix, limit: limit, now: time.Now}
}

// clientIP strips the port from the remote address. Behind the RealIP
// middleware the address is already a bare IP; direct connections carry an
// ephemeral port that must not fragment the budget.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// key buckets the counter by window so a blocked client recovers as soon as
// the current window rolls over, no matter how often it retries.
func (l *RateLimiter) key(ip string, now time.Time) string {
	bucket := now.Unix() / int64(rateLimitWindow/time.Second)
	return fmt.Sprintf("%sratelimit:%s:%d", l.prefix, ip, bucket)
}

// Middleware rejects clients that exceed the configured rate with 429.
// On Redis failure the request passes through: limiting is protection, not a
// correctness requirement.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := l.key(clientIP(r), l.now())

		pipe := l.client.Pipeline()
		incr := pipe.Incr(r.Context(), key)
		pipe.Expire(r.Context(), key, 2*rateLimitWindow)
		if _, err := pipe.Exec(r.Context()); err != nil {
			l.logger.Warn().Err(err).Msg("rate limit check failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		if incr.Val() > int64(l.limit) {
			metrics.RateLimitHits.WithLabelValues(r.URL.Path).Inc()
			w.Header().Set("Retry-After", "60")
			http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
