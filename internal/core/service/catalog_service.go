package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/webappnoauth/catalog-portal/internal/api/metrics"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// CatalogService reads the products table through the raw SQL reader and the
// ORM reader and exposes both side by side.
type CatalogService struct {
	readers map[domain.ProductSource]ports.ProductReader
	logger  zerolog.Logger
}

func NewCatalogService(rawSQL, orm ports.ProductReader, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		readers: map[domain.ProductSource]ports.ProductReader{
			domain.SourceRawSQL: rawSQL,
			domain.SourceORM:    orm,
		},
		logger: logger,
	}
}

// Catalog loads the full product list through both readers.
func (s *CatalogService) Catalog(ctx context.Context) (*ports.Catalog, error) {
	rawSQL, err := s.Products(ctx, domain.SourceRawSQL)
	if err != nil {
		return nil, err
	}
	orm, err := s.Products(ctx, domain.SourceORM)
	if err != nil {
		return nil, err
	}

	return &ports.Catalog{
		RawSQLProducts: rawSQL,
		ORMProducts:    orm,
		RawSQLCount:    len(rawSQL),
		ORMCount:       len(orm),
	}, nil
}

// Summary returns totals per reader and a per-category breakdown.
func (s *CatalogService) Summary(ctx context.Context) (*ports.CatalogSummary, error) {
	rawTotal, err := s.Count(ctx, domain.SourceRawSQL)
	if err != nil {
		return nil, err
	}
	ormTotal, err := s.Count(ctx, domain.SourceORM)
	if err != nil {
		return nil, err
	}
	products, err := s.Products(ctx, domain.SourceORM)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	categories := make([]ports.CategoryCount, 0, len(counts))
	for name, n := range counts {
		categories = append(categories, ports.CategoryCount{Category: name, Count: n})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	return &ports.CatalogSummary{RawSQLTotal: rawTotal, ORMTotal: ormTotal, Categories: categories}, nil
}

func (s *CatalogService) Products(ctx context.Context, source domain.ProductSource) ([]domain.Product, error) {
	r, err := s.reader(source)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	err = s.observe(source, "list", func() error {
		var qerr error
		products, qerr = r.ListProducts(ctx)
		return qerr
	})
	return products, err
}

func (s *CatalogService) Product(ctx context.Context, source domain.ProductSource, id int) (*domain.Product, error) {
	r, err := s.reader(source)
	if err != nil {
		return nil, err
	}
	var product *domain.Product
	err = s.observe(source, "get", func() error {
		var qerr error
		product, qerr = r.GetProductByID(ctx, id)
		return qerr
	})
	return product, err
}

func (s *CatalogService) ProductsByCategory(ctx context.Context, source domain.ProductSource, category string) ([]domain.Product, error) {
	r, err := s.reader(source)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	err = s.observe(source, "by_category", func() error {
		var qerr error
		products, qerr = r.ListProductsByCategory(ctx, category)
		return qerr
	})
	return products, err
}

func (s *CatalogService) Count(ctx context.Context, source domain.ProductSource) (int64, error) {
	r, err := s.reader(source)
	if err != nil {
		return 0, err
	}
	var n int64
	err = s.observe(source, "count", func() error {
		var qerr error
		n, qerr = r.CountProducts(ctx)
		return qerr
	})
	return n, err
}

func (s *CatalogService) reader(source domain.ProductSource) (ports.ProductReader, error) {
	r, ok := s.readers[source]
	if !ok || r == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSource, source)
	}
	return r, nil
}

// observe records latency and outcome of a single reader call. Not-found is a
// successful query.
func (s *CatalogService) observe(source domain.ProductSource, op string, fn func() error) error {
	start := time.Now()
	err := fn()
	metrics.ProductQueryDuration.WithLabelValues(string(source)).Observe(time.Since(start).Seconds())

	if err != nil && !errors.Is(err, domain.ErrProductNotFound) {
		metrics.ProductQueriesTotal.WithLabelValues(string(source), "error").Inc()
		s.logger.Error().Err(err).Str("source", string(source)).Str("op", op).Msg("product query failed")
		return err
	}
	metrics.ProductQueriesTotal.WithLabelValues(string(source), "ok").Inc()
	return err
}
