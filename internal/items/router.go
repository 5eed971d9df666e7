package items

import (
	"github.com/gin-gonic/gin"
)

// SetupItemRoutes registers the catalog routes. Reads are public; mutations
// require a bearer credential (middleware injected by the caller).
func SetupItemRoutes(rg *gin.RouterGroup, controller *Controller, authRequired gin.HandlerFunc) {
	public := rg.Group("/items")
	{
		public.GET("", controller.ListItems)
		public.GET("/:id", controller.GetItem)
	}

	protected := rg.Group("/items")
	protected.Use(authRequired)
	{
		protected.POST("", controller.CreateItem)
		protected.PUT("/:id", controller.UpdateItem)
		protected.DELETE("/:id", controller.DeleteItem)
	}
}
