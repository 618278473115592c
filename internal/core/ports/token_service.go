package ports

import (
	"context"
	"time"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

// TokenService issues and validates signed access tokens.
type TokenService interface {
	GenerateToken(username string) (*domain.IssuedToken, error)
	// ValidateToken verifies signature, issuer, audience and lifetime. The
	// returned identity carries no role; role enrichment is the caller's job.
	ValidateToken(token string) (*domain.Identity, error)
}

// LoginService issues tokens for the login page and the token endpoint, and
// records each issuance in the audit trail.
type LoginService interface {
	Login(ctx context.Context, username, remoteIP string) (*domain.IssuedToken, error)
}

// LoginAuditor accepts login events for asynchronous persistence.
type LoginAuditor interface {
	Record(event domain.LoginEvent)
}

// LoginEventRepository persists login events.
type LoginEventRepository interface {
	Insert(ctx context.Context, event domain.LoginEvent) error
}

// RateLimiter decides whether a keyed caller may proceed in the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, resetAt time.Time, err error)
}
