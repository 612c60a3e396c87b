package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"agenda-engine/internal/handler/httperr"
	"agenda-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit throttles per route and client address. Limiter outages let the request through.
func RateLimit(limiter Limiter, window time.Duration, logger *slog.Logger) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(c *gin.Context) {
		key := c.FullPath() + "|" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request", "route", c.FullPath(), "error", err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", retryAfter)
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
