package auth

import (
	"context"
	"errors"

	"marketplace/internal/audit"
	"marketplace/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Service orchestrates the session lifecycle: login and refresh exchange.
// Each call is a fresh, stateless transition; nothing is persisted for an
// issued token.
type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type service struct {
	repo   Repository
	tokens *TokenManager
	hasher *PasswordHasher
	audit  audit.Publisher
	log    *logger.Logger
}

func NewService(repo Repository, tokens *TokenManager, hasher *PasswordHasher, auditPub audit.Publisher) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		hasher: hasher,
		audit:  auditPub,
		log:    logger.GetDefault(),
	}
}

// Login verifies the password and mints an access/refresh pair. An unknown
// email and a wrong password are reported identically so the endpoint cannot
// be used to enumerate accounts.
func (s *service) Login(ctx context.Context, req *LoginRequest) (*TokenPair, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(req.Password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.IssuePair(user.Subject(), user.Email)
	if err != nil {
		return nil, err
	}

	s.log.LogAuthSuccess(ctx, user.Subject(), user.Email)
	s.publishAudit(ctx, audit.EventUserLogin, user.Subject(), user.Email)

	return pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. The same
// refresh token is returned unchanged: there is no rotation, so it stays
// usable until its own expiry. No storage is consulted.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.IssueAccessToken(claims.Subject, claims.Email)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    BearerTokenType,
	}, nil
}

// publishAudit emits a security event on a best-effort basis; a broker
// failure never fails the request.
func (s *service) publishAudit(ctx context.Context, eventType string, userID, email string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Publish(ctx, audit.NewEvent(eventType, userID, email)); err != nil {
		s.log.WithError(err).Warn("failed to publish audit event")
	}
}
