package middleware

import (
	"log/slog"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RateLimitMiddleware throttles login attempts per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.FixedWindowLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware. A nil limiter disables throttling.
func NewRateLimitMiddleware(limiter *ratelimit.FixedWindowLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// LoginAttempts rejects the request with 429 once the client IP used up its window.
func (m *RateLimitMiddleware) LoginAttempts(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		ctx := c.Request().Context()
		ip := c.RealIP()
		if !m.limiter.Allow(ctx, "login:"+ip) {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Login attempt throttled", slog.String("remote_ip", ip))

			return errors.WithStack(domainerrors.ErrTooManyLoginAttempts)
		}

		return next(c)
	}
}
