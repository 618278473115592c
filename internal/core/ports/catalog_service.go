package ports

import (
	"context"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// Catalog holds the same product table read through both access paths.
type Catalog struct {
	RawSQLProducts []domain.Product
	ORMProducts    []domain.Product
	RawSQLCount    int
	ORMCount       int
}

// CategoryCount is one row of the per-category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// CatalogSummary backs the advanced admin dashboard.
type CatalogSummary struct {
	RawSQLTotal int64
	ORMTotal    int64
	Categories  []CategoryCount
}

// CatalogService composes the product readers.
type CatalogService interface {
	Catalog(ctx context.Context) (*Catalog, error)
	Summary(ctx context.Context) (*CatalogSummary, error)
	Products(ctx context.Context, source domain.ProductSource) ([]domain.Product, error)
	Product(ctx context.Context, source domain.ProductSource, id int) (*domain.Product, error)
	ProductsByCategory(ctx context.Context, source domain.ProductSource, category string) ([]domain.Product, error)
	Count(ctx context.Context, source domain.ProductSource) (int64, error)
}
