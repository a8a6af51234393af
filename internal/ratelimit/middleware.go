package ratelimit

import (
	"github.com/abhishek622/journalMin/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Middleware rejects with 429 once key(c) has used up its allowance. An empty key
// is treated as the client IP. Limiter failures let the request through.
func Middleware(l Limiter, key func(c *gin.Context) string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		k := key(c)
		if k == "" {
			k = "ip:" + c.ClientIP()
		}

		ok, err := l.Allow(c.Request.Context(), k)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("key", k), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			response.TooManyRequests(c, "")
			return
		}
		c.Next()
	}
}
