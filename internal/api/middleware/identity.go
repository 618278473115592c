package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

const identityKey = "identity"

// SetIdentity stores the authenticated principal on the request context.
func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the principal stored by Authenticate, if any.
func IdentityFrom(c echo.Context) (*domain.Identity, bool) {
	id, ok := c.Get(identityKey).(*domain.Identity)
	return id, ok && id != nil
}
