package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/api/metrics"
)

// RequireRoles admits identities holding one of allowedRoles. Role names are
// compared exactly. It must run after Authenticate.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !identity.HasRole(allowedRoles...) {
				metrics.AuthorizationDeniedTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
