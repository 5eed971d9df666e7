// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace/internal/audit"
	"marketplace/internal/auth"
	"marketplace/internal/items"
	"marketplace/internal/shared/config"
	"marketplace/internal/shared/database"
	"marketplace/internal/shared/middleware"
	"marketplace/internal/users"
	"marketplace/pkg/cache"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	audit  audit.Publisher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, auditPub audit.Publisher) *Router {
	return &Router{
		config: cfg,
		db:     db,
		audit:  auditPub,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	// Token components are built once and shared between the auth routes
	// and the middleware guarding protected routes.
	tokens := auth.NewTokenManager(r.config.JWT)
	hasher := auth.NewPasswordHasher()
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	resolver := auth.NewIdentityResolver(authRepo)
	authRequired := middleware.JWTAuth(tokens, resolver)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Auth routes
		authService := auth.NewService(authRepo, tokens, hasher, r.audit)
		authController := auth.NewController(authService)
		auth.NewRouter(authController).SetupRoutes(api)

		// Profile routes
		userRepo := users.NewRepository(r.db.GetPostgreSQL())
		userService := users.NewService(userRepo, tokens, r.audit)
		userController := users.NewController(userService)
		users.SetupProfileRoutes(api, userController, authRequired)

		// Catalog routes
		itemRepo := items.NewRepository(r.db.GetPostgreSQL())
		itemService := items.NewService(itemRepo)
		if rdb := r.db.GetRedisClient(); rdb != nil {
			itemService.SetCacheService(cache.NewService(rdb), r.config.Redis.CacheTTL)
		}
		itemController := items.NewController(itemService)
		items.SetupItemRoutes(api, itemController, authRequired)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "marketplace-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "marketplace-api",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
