package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/infra/ratelimit"

	"github.com/gin-gonic/gin"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

type RateLimiter interface {
	Allow(ctx context.Context, identity string) (ratelimit.Decision, error)
}

// RateLimit throttles per user, or per client IP for anonymous calls.
// Limiter failures let the request through.
func RateLimit(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := "ip:" + c.ClientIP()
		if userID, ok := GetUserID(c); ok {
			identity = "user:" + userID
		}

		decision, err := limiter.Allow(c.Request.Context(), identity)
		if err != nil {
			slog.Warn("rate limiter unavailable", "identity", identity, "error", err.Error())
			c.Next()
			return
		}

		c.Header(headerRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))
		if !decision.Allowed {
			c.Header(headerRetryAfter, strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
