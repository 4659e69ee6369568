// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/shopfront/internal/config"
)

const rateLimitWindow = time.Minute

// HitCounter counts requests per key within a window
type HitCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit implements fixed window rate limiting per client IP. Requests are
// allowed through when the counter is unavailable.
func RateLimit(cfg config.SecurityConfig, counter HitCounter, logger logrus.FieldLogger) gin.HandlerFunc {
	limit := int64(cfg.RateLimitPerMinute + cfg.RateLimitBurst)

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		count, err := counter.Hit(ctx, "rate_limit:"+c.ClientIP(), rateLimitWindow)
		if err != nil {
			logger.WithError(err).Warn("Rate limit counter unavailable")
			c.Next()
			return
		}

		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > limit {
			c.Header("Retry-After", strconv.Itoa(int(rateLimitWindow.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": int(rateLimitWindow.Seconds()),
			})
			return
		}

		c.Next()
	}
}
