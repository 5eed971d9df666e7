package auth

import (
	"github.com/gin-gonic/gin"
)

// Router handles auth-related routes
type Router struct {
	controller *Controller
}

func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
	}
}

// SetupRoutes registers the auth routes. Both are public: login takes
// credentials, refresh takes a refresh token.
func (r *Router) SetupRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", r.controller.Login)
		authGroup.POST("/refresh", r.controller.Refresh)
	}
}
