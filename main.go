package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"recipe-auth/internal/config"
	"recipe-auth/internal/controllers"
	"recipe-auth/internal/database"
	"recipe-auth/internal/logging"
	"recipe-auth/internal/middleware"
	"recipe-auth/internal/repository"
	"recipe-auth/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logging.New(os.Stdout, cfg.GinMode)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error(context.Background(), "server exited", "error", err)
		os.Exit(1)
	}
}

// run owns every resource it opens, so deferred cleanup happens before main exits.
func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Connect to database
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := database.NewConnection(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info(ctx, "connected to database")

	// Run database migrations
	if err := database.RunMigrations(ctx, db); err != nil {
		return err
	}
	log.Info(ctx, "database migrations completed")

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(cfg.BcryptCost), log)
	authController := controllers.NewAuthController(authService, log)

	gin.SetMode(cfg.GinMode)
	router := newRouter(cfg, log, authController)

	addr := ":" + cfg.Port
	log.Info(ctx, "server starting", "addr", addr, "mode", cfg.GinMode)
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func newRouter(cfg *config.Config, log logging.Logger, authController *controllers.AuthController) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS(cfg.CORSAllowedOrigins))

	// Process-level health check, independent of the frontend's /api/auth/test check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	authController.Register(router.Group("/api/auth"))

	return router
}
