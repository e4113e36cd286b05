package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"caretrack/internal/infrastructure/ratelimit"
	"caretrack/internal/shared/constants"
	"caretrack/internal/shared/logger"
	"caretrack/internal/shared/utils"
)

// RateLimit enforces a per-facility request budget on expensive endpoints
// such as the alert generation pass. A nil limiter disables limiting.
func RateLimit(limiter ratelimit.RateLimiter, config ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("facility:%d:%s", c.GetUint(constants.ContextKeyFacilityID), c.FullPath())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			// Do not block traffic when the limiter backend is down.
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
