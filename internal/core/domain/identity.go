package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("access forbidden")
	ErrRateLimited  = errors.New("too many requests")
)

// Identity is the authenticated principal of a request.
type Identity struct {
	Username  string
	TokenID   string
	ExpiresAt time.Time
	// Role is empty when the username has no directory entry.
	Role string
}

// DisplayRole returns the role, or RoleUnknown when there is none.
func (i Identity) DisplayRole() string {
	if i.Role == "" {
		return RoleUnknown
	}
	return i.Role
}

// HasRole reports whether the identity holds one of roles. Comparison is exact.
func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if i.Role != "" && i.Role == r {
			return true
		}
	}
	return false
}

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginEvent is a write-only audit record of a token issuance.
type LoginEvent struct {
	Username  string
	TokenID   string
	RemoteIP  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
