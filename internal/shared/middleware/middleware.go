package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marketplace/internal/auth"
	"marketplace/internal/shared/utils/response"
	"marketplace/internal/users"
	"marketplace/pkg/logger"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CurrentUserKey = users.CurrentUserKey
	UserIDKey      = "user_id"
	UserEmailKey   = "user_email"
	RequestIDKey   = "request_id"
)

// JWTAuth gates protected routes. It extracts the bearer credential,
// verifies it as an access token and resolves the authenticated user, in
// that order; every authentication failure is a 401 and an unresolvable
// subject is a 404.
func JWTAuth(tokens *auth.TokenManager, resolver *auth.IdentityResolver) gin.HandlerFunc {
	log := logger.GetDefault()

	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			log.LogAuthFailure(c.Request.Context(), err.Error(), c.ClientIP())
			response.AbortWithError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}

		claims, err := tokens.VerifyAccess(tokenString)
		if err != nil {
			log.LogAuthFailure(c.Request.Context(), err.Error(), c.ClientIP())
			switch {
			case errors.Is(err, auth.ErrTokenExpired):
				response.AbortWithError(c, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrWrongTokenType), errors.Is(err, auth.ErrInvalidToken):
				response.AbortWithError(c, http.StatusUnauthorized, "Invalid access token")
			default:
				response.AbortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		user, err := resolver.Resolve(c.Request.Context(), claims)
		if err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				response.AbortWithError(c, http.StatusNotFound, "User not found")
				return
			}
			response.AbortWithError(c, http.StatusInternalServerError, "Failed to resolve user")
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(UserIDKey, user.Subject())
		c.Set(UserEmailKey, user.Email)

		c.Next()
	}
}

// RequestID tags every request with an id, honoring one supplied by the
// client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()
	}
}
