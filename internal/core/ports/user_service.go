package ports

import (
	"context"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// UserService exposes the user directory to handlers and middleware.
type UserService interface {
	GetUser(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	Stats(ctx context.Context) (domain.UserStats, error)
}
