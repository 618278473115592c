package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

type stubReader struct {
	products []domain.Product
	err      error
	calls    int
}

func (r *stubReader) ListProducts(context.Context) ([]domain.Product, error) {
	r.calls++
	return r.products, r.err
}

func (r *stubReader) GetProductByID(_ context.Context, id int) (*domain.Product, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("get product %d: %w", id, domain.ErrProductNotFound)
}

func (r *stubReader) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.calls++
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, r.err
}

func (r *stubReader) CountProducts(context.Context) (int64, error) {
	r.calls++
	return int64(len(r.products)), r.err
}

func catalogFixture() []domain.Product {
	return []domain.Product{
		{ID: 6, Name: "Bluetooth Headphones", Price: decimal.RequireFromString("199.99"), Category: "Electronics"},
		{ID: 3, Name: "Coffee Mug", Price: decimal.RequireFromString("12.50"), Category: "Kitchen"},
		{ID: 1, Name: "Laptop Computer", Price: decimal.RequireFromString("1299.99"), Category: "Electronics"},
		{ID: 5, Name: "Notebook", Price: decimal.RequireFromString("8.99"), Category: ""},
	}
}

func TestCatalogService_Catalog(t *testing.T) {
	raw := &stubReader{products: catalogFixture()}
	orm := &stubReader{products: catalogFixture()[:3]}
	svc := NewCatalogService(raw, orm, zerolog.Nop())

	catalog, err := svc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, catalog.RawSQLCount)
	assert.Equal(t, 3, catalog.ORMCount)
	assert.Len(t, catalog.RawSQLProducts, 4)
	assert.Len(t, catalog.ORMProducts, 3)
	assert.Equal(t, 1, raw.calls)
	assert.Equal(t, 1, orm.calls)
}

func TestCatalogService_Catalog_ReaderError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewCatalogService(&stubReader{}, &stubReader{err: boom}, zerolog.Nop())

	_, err := svc.Catalog(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestCatalogService_SourceSelection(t *testing.T) {
	raw := &stubReader{products: catalogFixture()}
	orm := &stubReader{products: catalogFixture()[:1]}
	svc := NewCatalogService(raw, orm, zerolog.Nop())
	ctx := context.Background()

	n, err := svc.Count(ctx, domain.SourceRawSQL)
	require.NoError(t, err)
	assert.EqualValues(t, 4, n)

	n, err = svc.Count(ctx, domain.SourceORM)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = svc.Products(ctx, domain.ProductSource("nosql"))
	assert.ErrorIs(t, err, domain.ErrUnknownSource)
}

func TestCatalogService_Product(t *testing.T) {
	svc := NewCatalogService(&stubReader{products: catalogFixture()}, &stubReader{}, zerolog.Nop())
	ctx := context.Background()

	p, err := svc.Product(ctx, domain.SourceRawSQL, 3)
	require.NoError(t, err)
	assert.Equal(t, "Coffee Mug", p.Name)
	assert.Equal(t, "$12.50", p.DisplayPrice())

	_, err = svc.Product(ctx, domain.SourceRawSQL, 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogService_ProductsByCategory(t *testing.T) {
	svc := NewCatalogService(&stubReader{products: catalogFixture()}, &stubReader{}, zerolog.Nop())

	products, err := svc.ProductsByCategory(context.Background(), domain.SourceRawSQL, "Electronics")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogService_Summary(t *testing.T) {
	svc := NewCatalogService(&stubReader{products: catalogFixture()}, &stubReader{products: catalogFixture()}, zerolog.Nop())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, summary.RawSQLTotal)
	assert.EqualValues(t, 4, summary.ORMTotal)
	assert.Equal(t, []ports.CategoryCount{
		{Category: "", Count: 1},
		{Category: "Electronics", Count: 2},
		{Category: "Kitchen", Count: 1},
	}, summary.Categories)
}
