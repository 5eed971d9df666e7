package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"marketplace/internal/shared/config"
)

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidScheme      = errors.New("authorization scheme must be Bearer")
	ErrTokenMalformed     = errors.New("malformed token")
	ErrInvalidSignature   = errors.New("invalid token signature")
	ErrTokenExpired       = errors.New("token expired")
	ErrWrongTokenType     = errors.New("wrong token type")
	ErrInvalidToken       = errors.New("invalid token")
)

const issuer = "marketplace"

// TokenManager issues and verifies signed, expiring claim sets. It is a pure
// function of its immutable configuration and the wall clock; safe for
// concurrent use.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// IssueAccessToken mints a short-lived access token for the given subject.
func (m *TokenManager) IssueAccessToken(subject, email string) (string, error) {
	return m.issue(subject, email, TokenTypeAccess, m.accessTTL)
}

// IssueRefreshToken mints a long-lived refresh token for the given subject.
func (m *TokenManager) IssueRefreshToken(subject, email string) (string, error) {
	return m.issue(subject, email, TokenTypeRefresh, m.refreshTTL)
}

// IssuePair mints both tokens for the given subject.
func (m *TokenManager) IssuePair(subject, email string) (*TokenPair, error) {
	accessToken, err := m.IssueAccessToken(subject, email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := m.IssueRefreshToken(subject, email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    BearerTokenType,
	}, nil
}

func (m *TokenManager) issue(subject, email string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyAccess decodes and validates an access token.
func (m *TokenManager) VerifyAccess(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeAccess)
}

// VerifyRefresh decodes and validates a refresh token.
func (m *TokenManager) VerifyRefresh(tokenString string) (*Claims, error) {
	return m.verify(tokenString, TokenTypeRefresh)
}

func (m *TokenManager) verify(tokenString string, want TokenType) (*Claims, error) {
	claims, err := m.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	if claims.Subject == "" || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Parse decodes a token and maps library failures onto the package error
// taxonomy. Signature failures take precedence over expiry so that no field
// of an untrusted token is ever interpreted.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractBearerToken pulls the credential out of an Authorization header.
// The scheme match is case-insensitive.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingCredentials
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidScheme
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingCredentials
	}
	return token, nil
}
