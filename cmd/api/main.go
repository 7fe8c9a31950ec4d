package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prefeitura-rio/app-docnum/internal/config"
	"github.com/prefeitura-rio/app-docnum/internal/logging"
	"github.com/prefeitura-rio/app-docnum/internal/observability"
	"github.com/prefeitura-rio/app-docnum/internal/server"
	"go.uber.org/zap"
)

// @title           DocNum API
// @version         1.0
// @description     API para geração, validação e formatação de CPF e CNPJ.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name documents
// @tag.description Geração, validação e formatação de documentos

// @tag.name health
// @tag.description Health check operations

func main() {
	// Load configuration first; it carries the log level
	if err := config.LoadConfig(); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logging.InitLogger(config.AppConfig.LogLevel); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Initialize observability
	if err := observability.InitTracer(config.AppConfig); err != nil {
		logging.Logger.Error("failed to initialize tracer", zap.Error(err))
	}
	defer observability.ShutdownTracer()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, config.AppConfig, logging.Logger); err != nil {
		logging.Logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
