package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/webappnoauth/catalog-portal/internal/api/metrics"
	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// LoginService issues tokens for any non-blank username. The username does not
// need a directory entry: unknown users authenticate without a role.
type LoginService struct {
	tokens  ports.TokenService
	auditor ports.LoginAuditor
	logger  zerolog.Logger
}

func NewLoginService(tokens ports.TokenService, auditor ports.LoginAuditor, logger zerolog.Logger) *LoginService {
	return &LoginService{tokens: tokens, auditor: auditor, logger: logger}
}

func (s *LoginService) Login(_ context.Context, username, remoteIP string) (*domain.IssuedToken, error) {
	issued, err := s.tokens.GenerateToken(username)
	if err != nil {
		return nil, err
	}
	metrics.TokensIssuedTotal.Inc()

	if s.auditor != nil {
		s.auditor.Record(domain.LoginEvent{
			Username:  issued.Username,
			TokenID:   issued.TokenID,
			RemoteIP:  remoteIP,
			IssuedAt:  time.Now().UTC(),
			ExpiresAt: issued.ExpiresAt,
		})
	}

	s.logger.Info().
		Str("username", issued.Username).
		Str("token_id", issued.TokenID).
		Time("expires_at", issued.ExpiresAt).
		Msg("token issued")

	return issued, nil
}
