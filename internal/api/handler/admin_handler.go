package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

const msgAdminWelcome = "Welcome to the Admin Dashboard! This section is protected and requires JWT authentication."

// AdminHandler serves the protected pages. Authentication and role gates are
// applied by middleware at route registration.
type AdminHandler struct {
	catalog ports.CatalogService
	users   ports.UserService
}

func NewAdminHandler(catalog ports.CatalogService, users ports.UserService) *AdminHandler {
	return &AdminHandler{catalog: catalog, users: users}
}

func (h *AdminHandler) Index(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	catalog, err := h.catalog.Catalog(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, tmplAdminIndex, adminIndexView{
		Page:    newPage("Admin Dashboard", id),
		Message: msgAdminWelcome,
		Catalog: catalog,
	})
}

// Dashboard shows per-source totals and the per-category breakdown.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	summary, err := h.catalog.Summary(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, tmplDashboard, dashboardView{
		Page:    newPage("Advanced Admin Dashboard", id),
		Summary: summary,
	})
}

func (h *AdminHandler) UserManager(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, tmplUserManager, userManagerView{
		Page:    newPage("User Management", id),
		Message: "User Management - Admin Only",
		Users:   users,
	})
}

func (h *AdminHandler) Reports(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.users.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, tmplReports, reportsView{
		Page:    newPage("Reports", id),
		Message: "Reports Dashboard - Admin and Managers Only",
		Stats:   stats,
	})
}

// Profile shows the caller's directory record. Unknown users get the page
// without a record.
func (h *AdminHandler) Profile(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetUser(c.Request().Context(), id.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	return c.Render(http.StatusOK, tmplProfile, profileView{
		Page:    newPage("User Profile", id),
		Message: "User Profile",
		User:    user,
	})
}
