package users

import (
	"github.com/gin-gonic/gin"
)

// SetupProfileRoutes registers the profile routes. The auth middleware is
// injected by the caller to avoid an import cycle with the auth package.
func SetupProfileRoutes(rg *gin.RouterGroup, controller *Controller, authRequired gin.HandlerFunc) {
	profile := rg.Group("/profile")
	profile.Use(authRequired)
	{
		profile.GET("", controller.GetProfile)
		profile.PUT("", controller.UpdateProfile)
	}
}
