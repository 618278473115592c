package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// HomeHandler serves the public catalog pages.
type HomeHandler struct {
	catalog ports.CatalogService
}

func NewHomeHandler(catalog ports.CatalogService) *HomeHandler {
	return &HomeHandler{catalog: catalog}
}

// Index renders both product lists side by side.
func (h *HomeHandler) Index(c echo.Context) error {
	catalog, err := h.catalog.Catalog(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, tmplHome, homeView{
		Page:    newPage("Products Catalog", nil),
		Catalog: catalog,
	})
}

func (h *HomeHandler) Privacy(c echo.Context) error {
	return c.Render(http.StatusOK, tmplPrivacy, homeView{Page: newPage("Privacy Policy", nil)})
}

// Error renders the error page. It is never cached.
func (h *HomeHandler) Error(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store, no-cache")
	return c.Render(http.StatusOK, TmplError, ErrorView{
		Page:      newPage("Error", nil),
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the RequestID middleware.
func RequestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
