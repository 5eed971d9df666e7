package auth

import (
	"context"
	"errors"
	"strconv"

	"marketplace/internal/users"
)

// IdentityResolver maps verified claims to a concrete user record. Lookup is
// by email first, falling back to the subject id when the email misses, so a
// token minted before an email change still resolves.
type IdentityResolver struct {
	repo Repository
}

func NewIdentityResolver(repo Repository) *IdentityResolver {
	return &IdentityResolver{repo: repo}
}

// Resolve returns the user the claims refer to, or ErrUserNotFound. It never
// mutates state.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims) (*users.User, error) {
	user, err := r.repo.GetUserByEmail(ctx, claims.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	id, convErr := strconv.ParseUint(claims.Subject, 10, 64)
	if convErr != nil {
		return nil, ErrUserNotFound
	}
	return r.repo.GetUserByID(ctx, uint(id))
}
