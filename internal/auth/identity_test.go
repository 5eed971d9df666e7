package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestIdentityResolver_ResolveByEmail(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user1@example.com", "pass123", "Demo User")
	resolver := NewIdentityResolver(NewRepository(db))

	claims := &Claims{
		Email:            user.Email,
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.Subject()},
	}

	resolved, err := resolver.Resolve(context.Background(), claims)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
}

func TestIdentityResolver_FallsBackToSubjectID(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "new@example.com", "pass123", "Demo User")
	resolver := NewIdentityResolver(NewRepository(db))

	// Token was minted before the email changed; the stale email misses but
	// the subject id still resolves.
	claims := &Claims{
		Email:            "old@example.com",
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.Subject()},
	}

	resolved, err := resolver.Resolve(context.Background(), claims)
	require.NoError(t, err)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, "new@example.com", resolved.Email)
}

func TestIdentityResolver_UserNotFound(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(NewRepository(db))

	claims := &Claims{
		Email:            "ghost@example.com",
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "9999"},
	}

	_, err := resolver.Resolve(context.Background(), claims)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestIdentityResolver_NonNumericSubject(t *testing.T) {
	db := newTestDB(t)
	resolver := NewIdentityResolver(NewRepository(db))

	claims := &Claims{
		Email:            "ghost@example.com",
		TokenType:        TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-number"},
	}

	_, err := resolver.Resolve(context.Background(), claims)
	require.ErrorIs(t, err, ErrUserNotFound)
}
