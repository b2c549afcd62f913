package main

import (
	"context"
	"log/slog"
	"os"

	"warden/config"
	"warden/internal/delivery"
	"warden/internal/delivery/http"
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/router/handler"
	"warden/internal/delivery/scheduler"
	"warden/internal/domain/lifecycle"
	"warden/internal/domain/service"
	"warden/internal/infra/auth"
	"warden/internal/infra/auth/firebase"
	"warden/internal/infra/auth/google"
	"warden/internal/infra/cache"
	logs "warden/internal/infra/log"
	"warden/internal/infra/mail"
	"warden/internal/infra/persistence/memory"
	"warden/internal/infra/persistence/postgres"
	"warden/internal/usecase"
	"warden/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedOnStartup,
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
			cache.NewRedisClient,
			cache.NewTokenBucket,
		),
		mail.Module,
	)
}

// injectRepo selects the store named by storage.driver.
func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return memory.Module
	}

	return postgres.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenIssuers,
			fx.Annotate(
				newGoogleVerifier,
				fx.ResultTags(`group:"identity_verifiers"`),
			),
			fx.Annotate(
				newFirebaseVerifier,
				fx.ResultTags(`group:"identity_verifiers"`),
			),
			fx.Annotate(
				newGoogleDriveLister,
				fx.ResultTags(`group:"provider_file_listers"`),
			),
		),
	)
}

// newGoogleVerifier yields nil when Google sign-in is not configured; the federated service skips nil verifiers.
func newGoogleVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, nil
	}

	return google.NewVerifier(cfg, logger)
}

// newGoogleDriveLister yields nil when Google sign-in is not configured.
func newGoogleDriveLister(cfg *config.Config, logger *slog.Logger) (service.ProviderFileLister, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, nil
	}

	return google.NewDriveLister(cfg, logger)
}

// newFirebaseVerifier creates a Firebase verifier with dependency injection
func newFirebaseVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, nil // Firebase is optional
	}

	return firebase.NewVerifier(ctx, cfg, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewAccountService,
			impl.NewFederatedService,
			impl.NewHousekeepingService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewFederatedHandler,
			handler.NewAdminHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedOnStartup upserts the bootstrap accounts once storage is up, when seed.onStartup is set.
func seedOnStartup(lc fx.Lifecycle, cfg *config.Config, seed usecase.SeedUsecase) {
	if !cfg.Seed.OnStartup {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			_, err := seed.Seed(ctx)

			return err
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
