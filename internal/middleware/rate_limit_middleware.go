package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vango/pkg/cache"
)

// RateLimitMiddleware caps requests per client IP over a rolling window.
// The limiter fails open when the cache is unavailable.
func RateLimitMiddleware(c *cache.RedisCache, limit int64, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", ctx.ClientIP())

		count, err := c.Increment(ctx.Request.Context(), key)
		if err != nil {
			ctx.Next()
			return
		}

		if count == 1 {
			c.SetExpire(ctx.Request.Context(), key, window)
		}

		if count > limit {
			ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
