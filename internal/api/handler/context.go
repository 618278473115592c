package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/api/middleware"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// ctxIdentity extracts the principal injected by the Authenticate middleware.
// A missing identity means the route was registered without it; reject with 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok || id.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return id, nil
}
