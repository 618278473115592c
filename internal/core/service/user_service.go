package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// UserService implements the directory use cases on top of a UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// GetUser looks a user up ignoring case. Blank names are never found.
func (s *UserService) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByUsername(ctx, username)
}

// ListUsers returns every user ordered by username.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	user = normalize(user)
	if user.Username == "" {
		return nil, domain.ErrInvalidUser
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created")
	return &user, nil
}

// UpdateUser replaces the email, location, department and role of an existing user.
func (s *UserService) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	user = normalize(user)
	if user.Username == "" {
		return nil, domain.ErrInvalidUser
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user updated")
	return s.repo.FindByUsername(ctx, user.Username)
}

func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.ErrInvalidUser
	}
	if err := s.repo.Delete(ctx, username); err != nil {
		return err
	}

	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}

func (s *UserService) Stats(ctx context.Context) (domain.UserStats, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}
	return domain.ComputeStats(users), nil
}

func normalize(u domain.User) domain.User {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
	u.Location = strings.TrimSpace(u.Location)
	u.Department = strings.TrimSpace(u.Department)
	u.Role = strings.TrimSpace(u.Role)
	return u
}
