// Command seed creates the configured admin and user accounts and exits.
// Accounts that already exist are left as they are, so it is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"warden/config"
	"warden/internal/domain/lifecycle"
	"warden/internal/errors"
	"warden/internal/infra/auth"
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
		slog.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return errors.Errorf("seed needs the postgres storage driver, got %q", cfg.Storage.Driver)
	}

	var seed usecase.SeedUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewSeedService,
		),
		fx.Populate(&seed),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelSeed()
	_, seedErr := seed.Seed(seedCtx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && seedErr == nil {
		return err
	}

	return seedErr
}
