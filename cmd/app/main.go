package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"metchera-backend/internal/common/config"
	"metchera-backend/internal/common/logger"
	"metchera-backend/internal/common/middleware"
	identityhttp "metchera-backend/internal/features/identity/delivery/http"
	"metchera-backend/internal/features/identity/repository"
	boltrepo "metchera-backend/internal/features/identity/repository/bolt"
	redisrepo "metchera-backend/internal/features/identity/repository/redis"
	"metchera-backend/internal/features/identity/service"
	"metchera-backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	logger.Init("metchera-backend", cfg.Debug)

	// Backend selection happens exactly once, here. A remote outage at
	// startup downgrades the whole session to the local store.
	repo, closeStore := selectRepository(cfg)
	defer closeStore()

	identitySvc := service.NewIdentityService(repo)

	expirationSvc := service.NewExpirationService(identitySvc, time.Duration(cfg.Identity.SweepIntervalMinutes)*time.Minute)
	expirationSvc.Start()
	defer expirationSvc.Stop()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	identityhttp.NewIdentityHandler(identitySvc).RegisterRoutes(v1)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "metchera-backend",
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// A server failure must unwind through main so the deferred store closer
	// and scheduler stop still run.
	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error().Err(err).Msg("Server failed")
	case <-quit:
		logger.Info().Msg("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// selectRepository picks the storage backend from credential presence. The
// returned closer releases whichever backend was opened.
func selectRepository(cfg *config.Config) (repository.IdentityRepository, func()) {
	if cfg.UseRemoteStore() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err == nil {
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("Using remote identity store")
			return redisrepo.NewIdentityRepository(client), func() { _ = client.Close() }
		}
		logger.Warn().Err(err).Msg("Remote store unreachable, falling back to local identity store")
	}

	repo, closeStore, err := boltrepo.Open(cfg.Identity.LocalStorePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open local store")
	}

	logger.Info().Str("path", cfg.Identity.LocalStorePath).Msg("Using local identity store")
	return repo, func() { _ = closeStore() }
}
