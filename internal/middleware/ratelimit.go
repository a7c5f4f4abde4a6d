package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	apperrors "budgetapp/internal/errors"
	"budgetapp/internal/logger"
)

// NewLimiter builds an in-memory per-key limiter from a formatted rate such
// as "100-M" (100 requests per minute).
func NewLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}
	return limiter.New(memory.NewStore(), rate), nil
}

// RateLimit rejects clients that exceed the limiter's rate, keyed by client IP.
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lctx, err := l.Get(c.Request.Context(), ip)
		if err != nil {
			logger.Get().Errorw("rate limit check failed", "ip", ip, "error", err)
			abortWithError(c, apperrors.ErrInternalServer)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lctx.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lctx.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lctx.Reset, 10))

		if lctx.Reached {
			logger.Get().Warnw("rate limit exceeded", "ip", ip, "limit", lctx.Limit)
			abortWithError(c, apperrors.ErrTooManyRequest)
			return
		}

		c.Next()
	}
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
