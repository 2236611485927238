package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxelane/config"
	"luxelane/logger"
	"luxelane/repository"
	"luxelane/routes"
	"luxelane/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// Load environment configuration
	_ = godotenv.Load()
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	// Seed the in-memory catalog; nothing here survives a restart
	catalog := repository.NewCatalogRepository(repository.SeedProducts())
	sessions := services.NewSessionManager(catalog, cfg.SessionTTL, cfg.ToastTTL, logger.Log)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.SessionTTL)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.RequestLogger(), gin.Recovery())

	routes.RegisterRoutes(router, catalog, sessions, tokens)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("LuxeLane storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
	logger.Log.Info("Server shutdown complete.")
}
