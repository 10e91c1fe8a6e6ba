package main

import (
	"context"
	"errors"
	"os"
	"time"

	"hearth/internal/cli"
	"hearth/internal/log"
	"hearth/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger().WithComponent(log.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	repo := cli.InitSnapshotStore(logger, cfg.SnapshotDBPath)
	client := cli.NewClient(logger, cfg)
	w := worker.NewSnapshotWorker(client, repo, cfg.SnapshotInterval, logger)

	ctx, done := cli.GracefulShutdown(logger, shutdownTimeout, func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close snapshot store", log.FieldError, err.Error())
		}
	})

	logger.Info("Snapshot worker starting",
		"interval", cfg.SnapshotInterval.String(),
		"db_path", cfg.SnapshotDBPath)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Snapshot worker stopped", log.FieldError, err.Error())
		<-done
		os.Exit(1)
	}

	<-done
	logger.Info("Snapshot worker stopped cleanly")
}
