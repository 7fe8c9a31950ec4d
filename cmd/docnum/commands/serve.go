package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prefeitura-rio/app-docnum/internal/config"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/observability"
	"github.com/prefeitura-rio/app-docnum/internal/server"
	"go.uber.org/zap"
)

// RunServe starts the HTTP API and blocks until SIGINT/SIGTERM or ctx is
// cancelled.
func RunServe(ctx context.Context, cfg *config.Config, logger *logging.SafeLogger) error {
	if err := observability.InitTracer(cfg); err != nil {
		logger.Error("failed to initialize tracer", zap.Error(err))
	}
	defer observability.ShutdownTracer()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg, logger)
}
