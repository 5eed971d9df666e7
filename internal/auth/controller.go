package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"marketplace/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed")
		return
	}

	pair, err := c.service.Login(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to login")
		return
	}

	response.JSON(ctx, http.StatusOK, pair)
}

func (c *Controller) Refresh(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed")
		return
	}

	pair, err := c.service.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			response.Error(ctx, http.StatusUnauthorized, "Refresh token expired")
		case errors.Is(err, ErrWrongTokenType):
			response.Error(ctx, http.StatusUnauthorized, "Invalid refresh token type")
		case errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrInvalidSignature), errors.Is(err, ErrInvalidToken):
			response.Error(ctx, http.StatusUnauthorized, "Invalid refresh token")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	response.JSON(ctx, http.StatusOK, pair)
}
