package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	contactdto "portfolio-server/internal/api/dto/v1/contact"
)

// RateLimitConfig defines configuration for the global rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// GlobalRateLimit bounds the whole process with a single token bucket. It is
// a secondary guard in front of the pipeline's per-client fixed-window
// counter; the two are not deduplicated and either may reject on its own.
func GlobalRateLimit(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, contactdto.ErrorResponse{
				Error: "Too many requests",
			})
			return
		}

		c.Next()
	}
}
