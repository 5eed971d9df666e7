package users

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"marketplace/internal/shared/utils/response"
)

// CurrentUserKey is the context key the auth middleware stores the resolved
// user under.
const CurrentUserKey = "current_user"

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

// currentUser pulls the resolved user out of the request context.
func currentUser(ctx *gin.Context) (*User, bool) {
	value, exists := ctx.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*User)
	return user, ok
}

func (c *Controller) GetProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	response.JSON(ctx, http.StatusOK, user.ToProfile())
}

func (c *Controller) UpdateProfile(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Validation failed")
		return
	}

	resp, err := c.service.UpdateProfile(ctx.Request.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyUpdate):
			response.Error(ctx, http.StatusBadRequest, "At least one field (name or email) must be provided")
		case errors.Is(err, ErrEmailInUse):
			response.Error(ctx, http.StatusBadRequest, "Email already in use")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}

	response.JSON(ctx, http.StatusOK, resp)
}
