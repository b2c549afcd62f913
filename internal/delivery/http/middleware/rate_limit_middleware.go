package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/delivery/http/response"
	"warden/internal/infra/cache"

	"github.com/labstack/echo/v4"
)

const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimitMiddleware throttles unauthenticated endpoints per client address.
type RateLimitMiddleware struct {
	limiter cache.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware accepts a nil limiter, in which case every request passes.
func NewRateLimitMiddleware(limiter cache.Limiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit returns a middleware that keeps a separate bucket per scope and client IP.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if m.limiter == nil {
			return next
		}

		return func(c echo.Context) error {
			ctx := c.Request().Context()
			decision, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				// Fail open.
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).
					Warn("Rate limiter unavailable", slog.String("scope", scope), slog.Any("error", err))

				return next(c)
			}

			header := c.Response().Header()
			header.Set(headerRateLimitLimit, strconv.Itoa(decision.Limit))
			header.Set(headerRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))

			if !decision.Allowed {
				return response.TooManyRequests(c, decision.RetryAfterSeconds())
			}

			return next(c)
		}
	}
}
