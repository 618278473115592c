package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/webappnoauth/catalog-portal/internal/api/metrics"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// TokenCookie is the cookie the login page stores the issued token in.
const TokenCookie = "access_token"

// Authenticate validates the bearer token, then enriches the identity with the
// role found in the user directory. Tokens for unknown users authenticate
// without a role.
//
// The token is read from the Authorization header, falling back to the
// access_token cookie so browser sessions work after logging in.
func Authenticate(tokens ports.TokenService, users ports.UserService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := tokenFromRequest(c)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			identity, err := tokens.ValidateToken(raw)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer error="invalid_token"`)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.GetUser(c.Request().Context(), identity.Username)
			switch {
			case err == nil:
				identity.Role = user.Role
			case errors.Is(err, domain.ErrUserNotFound):
			default:
				log.Warn().Err(err).Str("username", identity.Username).Msg("role lookup failed")
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		if cookie, err := c.Cookie(TokenCookie); err == nil && cookie.Value != "" {
			return cookie.Value, nil
		}
		return "", errors.New("missing authorization header")
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
