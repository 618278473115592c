package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

func directoryStub() *stubUserService {
	users := map[string]domain.User{
		"admin":      {Username: "admin", Email: "admin@company.com", Location: "Headquarters", Department: "IT", Role: domain.RoleAdmin},
		"jane_smith": {Username: "jane_smith", Email: "jane.smith@company.com", Location: "London", Department: "Marketing", Role: domain.RoleManager},
	}
	return &stubUserService{
		getFn: func(_ context.Context, username string) (*domain.User, error) {
			u, ok := users[domain.Key(username)]
			if !ok {
				return nil, domain.ErrUserNotFound
			}
			return &u, nil
		},
		listFn: func(context.Context) ([]domain.User, error) {
			return []domain.User{users["admin"], users["jane_smith"]}, nil
		},
		statsFn: func(context.Context) (domain.UserStats, error) {
			return domain.UserStats{TotalUsers: 5, AdminUsers: 1, ManagerUsers: 1, RegularUsers: 3}, nil
		},
	}
}

func TestAdminHandler_Index(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{products: sampleProducts()}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "testuser", "")

	if err := h.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"Admin Dashboard",
		"Welcome to the Admin Dashboard!",
		"Authenticated User:",
		"testuser",
		"Unknown",
		"Protected Content",
		"JWT Token Status",
		"/Admin/Dashboard",
		"/Admin/Login",
		"Reports Dashboard",
		"User Management",
		"Laptop Computer",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestAdminHandler_Index_RequiresIdentity(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, _ := httpStatus(t, h.Index(c))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAdminHandler_Dashboard(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{products: sampleProducts()}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin/Dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "admindashboarduser", "")

	if err := h.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{"Advanced Admin Dashboard", "Secure Administrative Zone", "admindashboarduser", "Electronics"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestAdminHandler_UserManager(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin/UserManager", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "admin", domain.RoleAdmin)

	if err := h.UserManager(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "User Management - Admin Only") || !strings.Contains(body, "jane.smith@company.com") {
		t.Fatalf("unexpected user manager page")
	}
}

func TestAdminHandler_Reports(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin/Reports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "jane_smith", domain.RoleManager)

	if err := h.Reports(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{"Reports Dashboard - Admin and Managers Only", "jane_smith", "Regular Users"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestAdminHandler_Profile(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin/Profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "admin", domain.RoleAdmin)

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "User Profile") || !strings.Contains(body, "Headquarters") {
		t.Fatalf("unexpected profile page")
	}
}

func TestAdminHandler_Profile_UnknownUser(t *testing.T) {
	e := newEcho(t)
	h := NewAdminHandler(&stubCatalog{}, directoryStub())

	req := httptest.NewRequest(http.MethodGet, "/Admin/Profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withIdentity(c, "user", "")

	if err := h.Profile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "No directory record") {
		t.Fatalf("expected missing record notice")
	}
}
