package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client. Clients are keyed by user_id
// when present, otherwise by remote IP; each key gets an independent
// token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Query("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		limiter := m.limiterFor(key)
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, slow down",
			})
			return
		}

		c.Next()
	}
}

func (m Middleware) limiterFor(key string) *rate.Limiter {
	if l, ok := m.limiters.Get(key); ok {
		return l
	}
	l := rate.NewLimiter(m.rps, m.burst)
	// A concurrent Add for the same key just means one extra bucket; the
	// cache converges on a single limiter per key.
	m.limiters.Add(key, l)
	return l
}
