package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketplace/internal/shared/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

func TestTokenManager_AccessTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	token, err := manager.IssueAccessToken("42", "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.VerifyAccess(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestTokenManager_RefreshTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	token, err := manager.IssueRefreshToken("42", "user@example.com")
	require.NoError(t, err)

	claims, err := manager.VerifyRefresh(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTTL = -1 * time.Minute
	manager := NewTokenManager(cfg)

	token, err := manager.IssueAccessToken("42", "user@example.com")
	require.NoError(t, err)

	_, err = manager.VerifyAccess(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	token, err := manager.IssueAccessToken("42", "user@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one character of the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = manager.VerifyAccess(tampered)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	other := testJWTConfig()
	other.Secret = "a-different-secret"
	otherManager := NewTokenManager(other)

	token, err := manager.IssueAccessToken("42", "user@example.com")
	require.NoError(t, err)

	_, err = otherManager.VerifyAccess(token)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenManager_TypeIsolation(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	accessToken, err := manager.IssueAccessToken("42", "user@example.com")
	require.NoError(t, err)
	refreshToken, err := manager.IssueRefreshToken("42", "user@example.com")
	require.NoError(t, err)

	_, err = manager.VerifyRefresh(accessToken)
	require.ErrorIs(t, err, ErrWrongTokenType)

	_, err = manager.VerifyAccess(refreshToken)
	require.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenManager_MissingRequiredFields(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	token, err := manager.IssueAccessToken("42", "")
	require.NoError(t, err)

	_, err = manager.VerifyAccess(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	token, err = manager.IssueAccessToken("", "user@example.com")
	require.NoError(t, err)

	_, err = manager.VerifyAccess(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MalformedToken(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "random string", token: "not-a-token"},
		{name: "two segments", token: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiI0MiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manager.VerifyAccess(tt.token)
			require.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}

func TestTokenManager_IssuePair(t *testing.T) {
	manager := NewTokenManager(testJWTConfig())

	pair, err := manager.IssuePair("42", "user@example.com")
	require.NoError(t, err)
	require.Equal(t, BearerTokenType, pair.TokenType)

	_, err = manager.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	_, err = manager.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "valid header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing header", header: "", wantErr: ErrMissingCredentials},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidScheme},
		{name: "no token", header: "Bearer ", wantErr: ErrMissingCredentials},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
