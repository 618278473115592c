package ports

import (
	"context"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// ProductReader is a read-only view of the products table. The raw SQL and the
// ORM implementations must return identical results for the same data.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
}
