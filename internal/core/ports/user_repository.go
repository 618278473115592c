package ports

import (
	"context"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// UserRepository stores directory entries keyed by case-insensitive username.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, username string) error
}
