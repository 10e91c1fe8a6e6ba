// Package cli consolidates the initialization shared by cmd/hearth and
// cmd/hearth-snapshot: .env loading, logging, configuration, and
// construction of the API client and snapshot store.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hearth/internal/api"
	"hearth/internal/config"
	"hearth/internal/log"
	"hearth/internal/snapshot"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging with default settings and
// sets it as the process default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// NewClient builds the API client from configuration.
// Returns the client or exits the process on failure.
func NewClient(logger *log.Logger, cfg *config.Config) *api.Client {
	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("Failed to initialize API client", log.FieldError, err.Error(), "base_url", cfg.BaseURL)
		os.Exit(1)
	}
	return client
}

// InitSnapshotStore opens the local snapshot store.
// Returns the repository or exits the process on failure.
func InitSnapshotStore(logger *log.Logger, dbPath string) *snapshot.Repository {
	repo, err := snapshot.NewRepository(dbPath)
	if err != nil {
		logger.WithComponent(log.ComponentSnapshot).Error(
			"Failed to initialize snapshot store", log.FieldError, err.Error(), "path", dbPath)
		os.Exit(1)
	}
	return repo
}

// GracefulShutdown sets up signal handling for graceful shutdown.
// Returns a context that will be cancelled on SIGINT/SIGTERM, and a
// channel that signals when the cleanup has finished.
func GracefulShutdown(logger *log.Logger, timeout time.Duration, cleanup func()) (context.Context, <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
		defer shutdownCancel()

		cleanupDone := make(chan struct{})
		go func() {
			if cleanup != nil {
				cleanup()
			}
			close(cleanupDone)
		}()

		select {
		case <-cleanupDone:
		case <-shutdownCtx.Done():
			logger.Warn("Cleanup timed out", log.FieldOperation, log.OpShutdown)
		}
	}()

	return ctx, done
}
