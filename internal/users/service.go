package users

import (
	"context"
	"errors"

	"marketplace/internal/audit"
	"marketplace/pkg/logger"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailInUse   = errors.New("email already in use")
	ErrEmptyUpdate  = errors.New("no fields to update")
)

// TokenIssuer mints credential pairs after a profile change. Satisfied by
// the auth token manager; declared here to avoid an import cycle.
type TokenIssuer interface {
	IssueAccessToken(subject, email string) (string, error)
	IssueRefreshToken(subject, email string) (string, error)
}

type Service interface {
	UpdateProfile(ctx context.Context, user *User, req *UpdateProfileRequest) (*UpdateProfileResponse, error)
}

type service struct {
	repo   Repository
	tokens TokenIssuer
	audit  audit.Publisher
	log    *logger.Logger
}

func NewService(repo Repository, tokens TokenIssuer, auditPub audit.Publisher) Service {
	return &service{
		repo:   repo,
		tokens: tokens,
		audit:  auditPub,
		log:    logger.GetDefault(),
	}
}

// UpdateProfile applies name/email changes and reissues both tokens so the
// new email is reflected in the claims immediately. Tokens issued before the
// change remain valid until they expire; there is no revocation store.
//
// A request that changes nothing is a no-op: the unchanged profile comes
// back without fresh tokens.
func (s *service) UpdateProfile(ctx context.Context, user *User, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	if req.Name == nil && req.Email == nil {
		return nil, ErrEmptyUpdate
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.repo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailInUse
		}
	}

	changed := false
	if req.Name != nil && *req.Name != user.Name {
		user.Name = *req.Name
		changed = true
	}
	if req.Email != nil && *req.Email != user.Email {
		user.Email = *req.Email
		changed = true
	}

	if !changed {
		return &UpdateProfileResponse{
			Message: "Profile unchanged",
			Profile: user.ToProfile(),
		}, nil
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Subject(), user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.Subject(), user.Email)
	if err != nil {
		return nil, err
	}

	s.publishAudit(ctx, user)

	return &UpdateProfileResponse{
		Message:      "Profile updated",
		Profile:      user.ToProfile(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *service) publishAudit(ctx context.Context, user *User) {
	if s.audit == nil {
		return
	}
	event := audit.NewEvent(audit.EventUserProfileUpdated, user.Subject(), user.Email)
	if err := s.audit.Publish(ctx, event); err != nil {
		s.log.WithError(err).Warn("failed to publish audit event")
	}
}
