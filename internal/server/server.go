// Package server wires the document handlers, middleware and observability
// endpoints into a gin engine and runs it with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-docnum/internal/config"
	"github.com/prefeitura-rio/app-docnum/internal/handlers"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/middleware"
	"github.com/prefeitura-rio/app-docnum/internal/services"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/app-docnum/docs"
)

// NewRouter builds the gin engine for cfg. ctx bounds the background work
// started by middleware, such as rate limiter cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, logger *logging.SafeLogger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Formatted CNPJs carry an escaped slash in the path.
	router.UseRawPath = true

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		middleware.RequestTiming(),
		cors.New(corsConfig(cfg)),
	)
	if cfg.RateLimitEnabled {
		router.Use(middleware.RateLimit(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst))
	}

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	service := services.NewDocumentService(nil, cfg.MaxGenerateCount, logger)
	documents := handlers.NewDocumentHandlers(service, cfg.MaxBatchSize, cfg.StrictValidationDefault, logger)

	v1 := router.Group("/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		documents.RegisterRoutes(v1)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 0 || (len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
	}
	c.AddAllowHeaders(middleware.RequestIDHeader)
	c.AddExposeHeaders(middleware.RequestIDHeader, "Retry-After")
	return c
}

// Run serves the API until ctx is cancelled, then shuts the server down
// within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg *config.Config, logger *logging.SafeLogger) error {
	routerCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      NewRouter(routerCtx, cfg, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.Int("port", cfg.Port),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	<-serverErr

	logger.Info("server exited gracefully")
	return nil
}
