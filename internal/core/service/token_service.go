package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
)

const defaultTokenTTL = 60 * time.Minute

// TokenConfig holds the fixed parameters every token is signed and checked with.
type TokenConfig struct {
	Key      string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// tokenClaims carries the username both as display name and as subject.
type tokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService signs and validates HS256 tokens with a symmetric key.
type TokenService struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

func NewTokenService(cfg TokenConfig) *TokenService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		key:      []byte(cfg.Key),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// GenerateToken issues a token for username. The user does not have to exist in
// the directory; such tokens authenticate but carry no role.
func (s *TokenService) GenerateToken(username string) (*domain.IssuedToken, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrInvalidUser
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := tokenClaims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.IssuedToken{
		Token:     signed,
		Username:  username,
		TokenID:   claims.ID,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken checks signature, algorithm, issuer, audience and lifetime.
func (s *TokenService) ValidateToken(token string) (*domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	username := claims.Name
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, errors.New("token has no name claim"))
	}

	identity := &domain.Identity{Username: username, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
