package handler

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/webappnoauth/catalog-portal/internal/api/middleware"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
	"github.com/webappnoauth/catalog-portal/web"
)

// --- stub services ---

type stubCatalog struct {
	products []domain.Product
	err      error
}

func (s *stubCatalog) Catalog(context.Context) (*ports.Catalog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &ports.Catalog{
		RawSQLProducts: s.products,
		ORMProducts:    s.products,
		RawSQLCount:    len(s.products),
		ORMCount:       len(s.products),
	}, nil
}

func (s *stubCatalog) Summary(context.Context) (*ports.CatalogSummary, error) {
	return &ports.CatalogSummary{
		RawSQLTotal: int64(len(s.products)),
		ORMTotal:    int64(len(s.products)),
		Categories:  []ports.CategoryCount{{Category: "Electronics", Count: len(s.products)}},
	}, s.err
}

func (s *stubCatalog) Products(_ context.Context, _ domain.ProductSource) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubCatalog) Product(_ context.Context, _ domain.ProductSource, id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubCatalog) ProductsByCategory(_ context.Context, _ domain.ProductSource, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, s.err
}

func (s *stubCatalog) Count(_ context.Context, _ domain.ProductSource) (int64, error) {
	return int64(len(s.products)), s.err
}

type stubUserService struct {
	getFn    func(ctx context.Context, username string) (*domain.User, error)
	listFn   func(ctx context.Context) ([]domain.User, error)
	createFn func(ctx context.Context, user domain.User) (*domain.User, error)
	updateFn func(ctx context.Context, user domain.User) (*domain.User, error)
	deleteFn func(ctx context.Context, username string) error
	statsFn  func(ctx context.Context) (domain.UserStats, error)
}

func (s *stubUserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return s.getFn(ctx, username)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserService) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	return s.updateFn(ctx, user)
}

func (s *stubUserService) DeleteUser(ctx context.Context, username string) error {
	return s.deleteFn(ctx, username)
}

func (s *stubUserService) Stats(ctx context.Context) (domain.UserStats, error) {
	return s.statsFn(ctx)
}

type stubLoginService struct {
	loginFn func(ctx context.Context, username, remoteIP string) (*domain.IssuedToken, error)
}

func (s *stubLoginService) Login(ctx context.Context, username, remoteIP string) (*domain.IssuedToken, error) {
	return s.loginFn(ctx, username, remoteIP)
}

// --- helpers ---

func sampleProducts() []domain.Product {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Product{
		{ID: 1, Name: "Laptop Computer", Price: decimal.RequireFromString("1299.99"), Category: "Electronics", CreatedAt: created},
		{ID: 3, Name: "Coffee Mug", Price: decimal.RequireFromString("12.5"), Category: "Kitchen", CreatedAt: created},
	}
}

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = r
	e.Validator = NewValidator()
	return e
}

func withIdentity(c echo.Context, username, role string) {
	middleware.SetIdentity(c, &domain.Identity{Username: username, Role: role})
}

func httpStatus(t *testing.T, err error) (int, string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	msg, _ := he.Message.(string)
	return he.Code, msg
}
