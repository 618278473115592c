package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnknownSource   = errors.New("unknown product source")
)

// Product is a read-only catalog entry.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DisplayPrice renders the price as currency with two fractional digits, e.g. "$12.50".
func (p Product) DisplayPrice() string {
	return "$" + p.Price.StringFixed(2)
}

// ProductSource names the data access path a product list was read through.
type ProductSource string

const (
	SourceRawSQL ProductSource = "sql"
	SourceORM    ProductSource = "orm"
)

// ParseProductSource resolves a query value to a source. Empty means raw SQL.
func ParseProductSource(s string) (ProductSource, bool) {
	switch ProductSource(s) {
	case "", SourceRawSQL:
		return SourceRawSQL, true
	case SourceORM:
		return SourceORM, true
	}
	return "", false
}
