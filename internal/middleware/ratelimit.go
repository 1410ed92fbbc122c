package middleware

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles requests with a fixed window counter in Redis.
type RateLimiter struct {
	redis      *redis.Client
	limit      int
	window     time.Duration
	prefix     string
	keyFn      func(r *http.Request) string
	failClosed bool
}

// NewRateLimiter builds a limiter keyed by keyFn. With failClosed set,
// Redis errors reject requests instead of letting them through.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration, prefix string, keyFn func(r *http.Request) string, failClosed bool) *RateLimiter {
	if keyFn == nil {
		keyFn = GetClientIP
	}
	return &RateLimiter{
		redis:      redisClient,
		limit:      limit,
		window:     window,
		prefix:     prefix,
		keyFn:      keyFn,
		failClosed: failClosed,
	}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Without Redis there is nothing to count against, so allow.
		if rl.redis == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := fmt.Sprintf("%s%s", rl.prefix, rl.keyFn(r))
		ctx := r.Context()

		pipe := rl.redis.Pipeline()
		incrCmd := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rl.window)
		if _, err := pipe.Exec(ctx); err != nil {
			if rl.failClosed {
				writeError(w, http.StatusServiceUnavailable, "Rate limiting unavailable")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		count := int(incrCmd.Val())
		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		resetTime := time.Now().Truncate(rl.window).Add(rl.window).Unix()

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime))

		if count > rl.limit {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", resetTime-time.Now().Unix()))
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewAPIRateLimiter returns the general limiter for API endpoints.
func NewAPIRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, 100, time.Minute, "ratelimit:api:", GetClientIP, false)
}

// NewWriteRateLimiter returns a stricter limiter for mutating endpoints.
func NewWriteRateLimiter(redisClient *redis.Client) *RateLimiter {
	return NewRateLimiter(redisClient, 30, time.Minute, "ratelimit:write:", GetClientIP, false)
}

// GetClientIP resolves the client address, preferring proxy headers.
func GetClientIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// First address in the chain is the original client.
		if idx := strings.Index(xff, ","); idx >= 0 {
			xff = xff[:idx]
		}
		return strings.TrimSpace(xff)
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
