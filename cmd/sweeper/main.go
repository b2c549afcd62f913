// Command sweeper purges expired and revoked credentials once and exits.
// It is meant to run from an external scheduler such as cron or a Kubernetes CronJob.
package main

import (
	"context"
	"log/slog"
	"os"

	"warden/config"
	"warden/internal/domain/lifecycle"
	"warden/internal/errors"
	logs "warden/internal/infra/log"
	"warden/internal/infra/persistence/postgres"
	"warden/internal/usecase"
	"warden/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	_ = godotenv.Load()

	if err := run(); err != nil {
		slog.Error("Sweeper failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return errors.Errorf("sweeper needs the postgres storage driver, got %q", cfg.Storage.Driver)
	}

	var (
		housekeeping usecase.HousekeepingUsecase
		logger       *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			postgres.New,
			postgres.NewCredentialRepository,
			impl.NewHousekeepingService,
		),
		fx.Populate(&housekeeping, &logger),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	ctx := context.Background()
	if cfg.Housekeeping.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Housekeeping.Timeout)
		defer cancel()
	}

	removed, purgeErr := housekeeping.Purge(ctx)
	if purgeErr == nil {
		logger.Info("Sweep finished", slog.Int64("removed", removed))
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && purgeErr == nil {
		return err
	}

	return purgeErr
}
