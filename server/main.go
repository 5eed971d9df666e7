package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"marketplace/api/routes"
	"marketplace/internal/audit"
	"marketplace/internal/shared/config"
	"marketplace/internal/shared/database"
	"marketplace/internal/shared/middleware"
	"marketplace/pkg/logger"
)

func main() {
	appLogger := logger.GetDefault()

	// Load environment variables; in containers they come from the runtime
	if err := godotenv.Load(); err != nil {
		appLogger.Info("No .env file found, using system environment variables")
	}

	// Load config; a missing JWT secret is fatal by design
	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("Invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	// Initialize DB (Postgres required, Redis optional)
	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("Failed to initialize database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Audit event publisher (no-op unless Kafka is configured)
	var auditPub audit.Publisher = audit.NewNopPublisher()
	if cfg.Audit.Enabled {
		kafkaPub, err := audit.NewKafkaPublisher(cfg.Audit)
		if err != nil {
			appLogger.Error("Failed to initialize audit publisher, continuing without audit events", slog.Any("error", err))
		} else {
			auditPub = kafkaPub
			appLogger.Info("Audit publisher initialized", slog.String("topic", cfg.Audit.Topic))
		}
	}
	defer auditPub.Close()

	router := setupRouter(cfg, db, auditPub)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info("🚀 Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("api_base", cfg.GetAPIBasePath()),
			slog.Bool("redis_cache", db.Redis != nil),
			slog.Bool("audit_events", cfg.Audit.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, auditPub audit.Publisher) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), RequestLoggerMiddleware(appLogger), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRouter := routes.NewRouter(cfg, db, auditPub)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
