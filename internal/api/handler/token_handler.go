package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// TokenHandler issues tokens for API clients.
type TokenHandler struct {
	login ports.LoginService
}

func NewTokenHandler(login ports.LoginService) *TokenHandler {
	return &TokenHandler{login: login}
}

type tokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
}

// Issue returns a signed token for any non-blank username.
//
// @Summary      Issue access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      tokenRequest  true  "Username"
// @Success      200   {object}  domain.IssuedToken
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/token [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req tokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	issued, err := h.login.Login(c.Request().Context(), req.Username, c.RealIP())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidUser) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": msgUsernameRequired})
		}
		return err
	}
	return c.JSON(http.StatusOK, issued)
}
