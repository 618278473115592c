package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/api/middleware"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

const (
	msgUsernameRequired = "Username is required"
	msgLoginSuccess     = "Login successful! Your JWT token is ready."
	msgAdminTokenReady  = "JWT token is ready for use!"
)

// LoginHandler serves the username-only login forms. Any non-blank username
// receives a token; the role comes from the directory at request time.
type LoginHandler struct {
	login        ports.LoginService
	secureCookie bool
}

func NewLoginHandler(login ports.LoginService, secureCookie bool) *LoginHandler {
	return &LoginHandler{login: login, secureCookie: secureCookie}
}

func (h *LoginHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, tmplLogin, loginView{Page: newPage("Login", nil), Form: "/Login"})
}

// Submit issues a token for the posted username and stores it in the
// access_token cookie so the admin pages work from the browser.
func (h *LoginHandler) Submit(c echo.Context) error {
	return h.submit(c, tmplLogin, newPage("Login", nil), "/Login", msgLoginSuccess)
}

// AdminForm is the login help page under /Admin.
func (h *LoginHandler) AdminForm(c echo.Context) error {
	return c.Render(http.StatusOK, tmplAdminLogin, loginView{Page: newPage("Admin Login", nil), Form: "/Admin/Login"})
}

func (h *LoginHandler) AdminSubmit(c echo.Context) error {
	return h.submit(c, tmplAdminLogin, newPage("Admin Login", nil), "/Admin/Login", msgAdminTokenReady)
}

func (h *LoginHandler) submit(c echo.Context, tmpl string, page Page, form, success string) error {
	input := c.FormValue("username")
	view := loginView{Page: page, Form: form, Input: input}

	username := strings.TrimSpace(input)
	if username == "" {
		view.Error = msgUsernameRequired
		return c.Render(http.StatusOK, tmpl, view)
	}

	issued, err := h.login.Login(c.Request().Context(), username, c.RealIP())
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    issued.Token,
		Path:     "/",
		Expires:  issued.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	view.Username = issued.Username
	view.Token = issued.Token
	view.ExpiresAt = issued.ExpiresAt
	view.Success = success
	return c.Render(http.StatusOK, tmpl, view)
}
