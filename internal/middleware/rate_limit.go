package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-assistant/pkg/response"
)

const HeaderSessionID = "X-Session-ID"

// RateLimit throttles per session. Sessions are identified by the
// X-Session-ID header, falling back to client IP for anonymous callers.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderSessionID)
		if key == "" {
			key = c.ClientIP()
		}

		if !m.rateLimiter.Allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %q", key)
			response.ErrorWithStatus(c, http.StatusTooManyRequests, "too many requests, slow down", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimiter keeps one token bucket per key with auto-expiring entries
// so idle sessions do not accumulate.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 30
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
