package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/infrastructure/db/memory"
)

func newTestUserService() *UserService {
	return NewUserService(memory.NewUserRepository(memory.SeedUsers), zerolog.Nop())
}

func TestUserService_GetUser_CaseInsensitive(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	for _, name := range []string{"admin", "ADMIN", "Admin", " admin "} {
		u, err := svc.GetUser(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, "admin", u.Username)
		assert.Equal(t, domain.RoleAdmin, u.Role)
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc := newTestUserService()

	for _, name := range []string{"", "   ", "ghost"} {
		_, err := svc.GetUser(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrUserNotFound, name)
	}
}

func TestUserService_ListUsers_Ordered(t *testing.T) {
	svc := newTestUserService()

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 5)

	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	assert.Equal(t, []string{"admin", "alice_brown", "bob_wilson", "jane_smith", "john_doe"}, names)
}

func TestUserService_CreateUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, domain.User{Username: "  carol ", Email: "carol@company.com", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, "carol", created.Username)

	got, err := svc.GetUser(ctx, "CAROL")
	require.NoError(t, err)
	assert.Equal(t, "carol@company.com", got.Email)

	_, err = svc.CreateUser(ctx, domain.User{Username: "Carol"})
	assert.ErrorIs(t, err, domain.ErrUserExists)

	_, err = svc.CreateUser(ctx, domain.User{Username: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	updated, err := svc.UpdateUser(ctx, domain.User{Username: "JOHN_DOE", Email: "jd@company.com", Location: "Boston", Department: "Sales", Role: domain.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, "john_doe", updated.Username, "stored spelling is kept")
	assert.Equal(t, domain.RoleManager, updated.Role)
	assert.Equal(t, "Boston", updated.Location)

	_, err = svc.UpdateUser(ctx, domain.User{Username: "ghost", Role: domain.RoleUser})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.UpdateUser(ctx, domain.User{Username: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	require.NoError(t, svc.DeleteUser(ctx, "Bob_Wilson"))
	_, err := svc.GetUser(ctx, "bob_wilson")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, "bob_wilson"), domain.ErrUserNotFound)
	assert.ErrorIs(t, svc.DeleteUser(ctx, " "), domain.ErrInvalidUser)
}

func TestUserService_Stats(t *testing.T) {
	svc := newTestUserService()

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.UserStats{TotalUsers: 5, AdminUsers: 1, ManagerUsers: 1, RegularUsers: 3}, stats)
}

func TestUserService_ReturnsCopies(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	u, err := svc.GetUser(ctx, "admin")
	require.NoError(t, err)
	u.Role = domain.RoleUser

	again, err := svc.GetUser(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, again.Role)

	list, _ := svc.ListUsers(ctx)
	list[0].Role = "Hacked"
	again, _ = svc.GetUser(ctx, list[0].Username)
	assert.NotEqual(t, "Hacked", again.Role)
}

func TestUserService_RepositoryErrorPropagates(t *testing.T) {
	svc := NewUserService(failingUserRepo{}, zerolog.Nop())

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}

type failingUserRepo struct{}

var errRepo = errors.New("repository unavailable")

func (failingUserRepo) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, errRepo
}
func (failingUserRepo) List(context.Context) ([]domain.User, error) { return nil, errRepo }
func (failingUserRepo) Create(context.Context, domain.User) error   { return errRepo }
func (failingUserRepo) Update(context.Context, domain.User) error   { return errRepo }
func (failingUserRepo) Delete(context.Context, string) error        { return errRepo }
