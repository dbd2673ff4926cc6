package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/pkg/redis"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// RateLimit redis sliding-window rate limiting, keyed by client IP and
// route. A nil client or a redis error degrades to allowing the request
// (same policy as the blacklist check in JWTAuth).
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "too many requests, please try again shortly")
			c.Abort()
			return
		}

		c.Next()
	}
}
