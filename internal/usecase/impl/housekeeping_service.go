package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/repository"
	"warden/internal/errors"
	"warden/internal/usecase"

	"go.uber.org/fx"
)

// housekeepingService implements the HousekeepingUsecase interface.
type housekeepingService struct {
	credentialRepo repository.CredentialRepository
	now            func() time.Time
	logger         *slog.Logger
}

// HousekeepingServiceParams holds dependencies for HousekeepingService, injected by Fx.
type HousekeepingServiceParams struct {
	fx.In

	CredentialRepo repository.CredentialRepository
	Logger         *slog.Logger
}

// NewHousekeepingService is the constructor for housekeepingService.
func NewHousekeepingService(params HousekeepingServiceParams) usecase.HousekeepingUsecase {
	return &housekeepingService{
		credentialRepo: params.CredentialRepo,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Purge is safe to run concurrently with any other operation: it only deletes rows no check accepts.
func (srv *housekeepingService) Purge(ctx context.Context) (int64, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	started := time.Now()

	removed, err := srv.credentialRepo.PurgeExpiredOrRevoked(ctx, srv.now())
	if err != nil {
		logger.Error("Credential purge failed", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to purge credentials")
	}

	logger.Info("Credential purge completed", slog.Int64("removed", removed), slog.Duration("elapsed", time.Since(started)))

	return removed, nil
}
