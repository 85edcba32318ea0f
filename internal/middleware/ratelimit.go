package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"expensify/internal/logger"
)

// UploadRateLimit returns a Gin middleware limiting requests per client IP.
// Applied to document upload routes, where each request costs a storage
// round-trip. rate uses limiter's formatted syntax, e.g. "30-M".
func UploadRateLimit(rate string) gin.HandlerFunc {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		logger.Get().Fatalf("invalid rate limit format %q: %v", rate, err)
	}
	instance := limiter.New(memory.NewStore(), parsed)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limitCtx, err := instance.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Get().Errorw("rate limit check failed", "ip", ip, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"error": gin.H{"code": "INTERNAL_ERROR", "message": "An internal error occurred"}})
			return
		}

		if limitCtx.Reached {
			logger.Get().Warnw("rate limit exceeded", "ip", ip, "limit", limitCtx.Limit)
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": gin.H{"code": "RATE_LIMITED", "message": "Too many requests. Please try again later."}})
			return
		}

		c.Next()
	}
}
