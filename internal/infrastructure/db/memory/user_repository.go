// Package memory holds the in-process user directory. Its contents are seeded
// at start-up and lost on restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// SeedUsers is the directory every process starts with.
var SeedUsers = []domain.User{
	{Username: "admin", Email: "admin@company.com", Location: "Headquarters", Department: "IT", Role: domain.RoleAdmin},
	{Username: "john_doe", Email: "john.doe@company.com", Location: "New York", Department: "Sales", Role: domain.RoleUser},
	{Username: "jane_smith", Email: "jane.smith@company.com", Location: "London", Department: "Marketing", Role: domain.RoleManager},
	{Username: "bob_wilson", Email: "bob.wilson@company.com", Location: "Tokyo", Department: "Engineering", Role: domain.RoleDeveloper},
	{Username: "alice_brown", Email: "alice.brown@company.com", Location: "Sydney", Department: "HR", Role: domain.RoleUser},
}

// UserRepository is a map keyed by lower-cased username. All reads return copies.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewUserRepository returns a repository holding a copy of seed.
func NewUserRepository(seed []domain.User) *UserRepository {
	r := &UserRepository{users: make(map[string]domain.User, len(seed))}
	for _, u := range seed {
		r.users[domain.Key(u.Username)] = u
	}
	return r
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[domain.Key(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

// List returns all users ordered by username, ignoring case.
func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		ki, kj := domain.Key(out[i].Username), domain.Key(out[j].Username)
		if ki != kj {
			return ki < kj
		}
		return out[i].Username < out[j].Username
	})
	return out, nil
}

func (r *UserRepository) Create(_ context.Context, user domain.User) error {
	key := domain.Key(user.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[key]; exists {
		return domain.ErrUserExists
	}
	r.users[key] = user
	return nil
}

// Update keeps the stored username spelling and replaces every other field.
func (r *UserRepository) Update(_ context.Context, user domain.User) error {
	key := domain.Key(user.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[key]
	if !ok {
		return domain.ErrUserNotFound
	}
	existing.Email = user.Email
	existing.Location = user.Location
	existing.Department = user.Department
	existing.Role = user.Role
	r.users[key] = existing
	return nil
}

func (r *UserRepository) Delete(_ context.Context, username string) error {
	key := domain.Key(username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[key]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, key)
	return nil
}
