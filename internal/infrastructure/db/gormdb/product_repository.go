package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// productRecord maps the existing lowercase products table.
type productRecord struct {
	ID          int             `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string          `gorm:"column:name;size:100;not null"`
	Description string          `gorm:"column:description;type:text"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Category    string          `gorm:"column:category;size:50"`
	CreatedAt   time.Time       `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (productRecord) TableName() string {
	return "products"
}

func (r productRecord) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

// ProductRepository reads products through the ORM mapping.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var records []productRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("orm list products: %w", err)
	}
	return toDomain(records), nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rec productRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("orm get product %d: %w", id, err)
	}
	p := rec.toDomain()
	return &p, nil
}

func (r *ProductRepository) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var records []productRecord
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("name").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("orm list products by category: %w", err)
	}
	return toDomain(records), nil
}

func (r *ProductRepository) CountProducts(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("orm count products: %w", err)
	}
	return n, nil
}

func toDomain(records []productRecord) []domain.Product {
	out := make([]domain.Product, len(records))
	for i, rec := range records {
		out[i] = rec.toDomain()
	}
	return out
}
