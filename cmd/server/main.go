// Package main implements the entry point for the self-QA API server,
// which generates identity question/answer training pairs for a subject
// by fanning prompts out to a configured chat-completion model.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/selfqa-api/internal/config"
	"github.com/phrazzld/selfqa-api/internal/domain"
	"github.com/phrazzld/selfqa-api/internal/platform/logger"
	"github.com/phrazzld/selfqa-api/internal/platform/openai"
	"github.com/phrazzld/selfqa-api/internal/platform/postgres"
	"github.com/phrazzld/selfqa-api/internal/selfqa"
	"github.com/phrazzld/selfqa-api/internal/service"
	"github.com/phrazzld/selfqa-api/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

// application bundles the initialized dependencies the router needs.
type application struct {
	config             *config.Config
	logger             *slog.Logger
	jwtService         auth.JWTService
	selfQAService      *service.SelfQAService
	modelConfigService *service.ModelConfigService
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"worker_count", cfg.Generation.WorkerCount)

	db, err := openDatabase(cfg.Database, appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	if err := postgres.RunMigrations(db, appLogger); err != nil {
		return err
	}

	app, err := buildApplication(cfg, db, appLogger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		appLogger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	appLogger.Info("server stopped")
	return nil
}

// openDatabase opens and verifies the connection pool.
func openDatabase(cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}

// buildApplication wires stores, services, and auth together.
func buildApplication(cfg *config.Config, db *sql.DB, appLogger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	configStore := postgres.NewPostgresModelConfigStore(db, appLogger)

	requestTimeout := time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second
	clientFactory := func(modelCfg *domain.ModelConfig) (selfqa.ModelClient, error) {
		return openai.NewChatClient(modelCfg, requestTimeout, appLogger)
	}

	dispatcherConfig := selfqa.DefaultDispatcherConfig()
	if cfg.Generation.WorkerCount > 0 {
		dispatcherConfig.WorkerCount = cfg.Generation.WorkerCount
	}

	return &application{
		config:             cfg,
		logger:             appLogger,
		jwtService:         jwtService,
		selfQAService:      service.NewSelfQAService(configStore, clientFactory, dispatcherConfig, appLogger),
		modelConfigService: service.NewModelConfigService(configStore, appLogger),
	}, nil
}
