package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webappnoauth/catalog-portal/internal/api/metrics"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// RateLimit rejects callers over the limiter's budget with 429, keyed by client
// IP and route. Limiter errors let the request through.
func RateLimit(limiter ports.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter == nil {
				return next(c)
			}

			key := c.Path() + ":" + c.RealIP()
			allowed, resetAt, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.LoginRateLimitedTotal.Inc()
				retry := int(time.Until(resetAt).Seconds())
				if retry < 1 {
					retry = 1
				}
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(retry))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}
			return next(c)
		}
	}
}
