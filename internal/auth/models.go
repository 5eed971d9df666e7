package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// BearerTokenType is the token_type value returned with every issued pair.
const BearerTokenType = "bearer"

// Claims is the signed JWT payload. Subject (the user id) and expiry live in
// the embedded RegisteredClaims.
type Claims struct {
	Email     string    `json:"email"`
	TokenType TokenType `json:"type"`
	jwt.RegisteredClaims
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest represents the refresh-exchange request payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokenPair represents an issued access/refresh credential pair. It is never
// persisted; a valid refresh token is enough to reconstruct it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
