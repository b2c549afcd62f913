// Package scheduler runs the in-process housekeeping sweep as a Delivery.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"warden/config"
	"warden/internal/delivery"
	deliverycontext "warden/internal/delivery/context"
	"warden/internal/usecase"
	"warden/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type housekeepingScheduler struct {
	housekeeping usecase.HousekeepingUsecase
	enabled      bool
	interval     time.Duration
	timeout      time.Duration
	logger       *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// SchedulerParams holds dependencies for the housekeeping scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Housekeeping usecase.HousekeepingUsecase
	Logger       *slog.Logger
}

// NewScheduler purges expired and revoked credentials every housekeeping.interval.
// A zero interval or housekeeping.enabled=false leaves the sweep to an external scheduler.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newHousekeepingScheduler(params.Housekeeping, params.Cfg.Housekeeping, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newHousekeepingScheduler(uc usecase.HousekeepingUsecase, cfg config.HousekeepingConfig, logger *slog.Logger) *housekeepingScheduler {
	return &housekeepingScheduler{
		housekeeping: uc,
		enabled:      cfg.Enabled && cfg.Interval > 0,
		interval:     cfg.Interval,
		timeout:      cfg.Timeout,
		logger:       logger.With(slog.String("component", "housekeeping")),
		stopCh:       make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (s *housekeepingScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("In-process housekeeping disabled")
		return nil
	}

	s.logger.Info("Starting housekeeping scheduler", slog.String("every", util.HumanDuration(s.interval)))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stopCh:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *housekeepingScheduler) runOnce(ctx context.Context) {
	runID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", runID))

	runCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), logger)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, s.timeout)
		defer cancel()
	}

	started := time.Now()

	// Failures are retried on the next tick.
	removed, err := s.housekeeping.Purge(runCtx)
	if err != nil {
		logger.Error("Housekeeping run failed", slog.Any("error", err), slog.String("took", util.HumanDuration(time.Since(started))))

		return
	}
	logger.Debug("Housekeeping run finished", slog.Int64("removed", removed), slog.String("took", util.HumanDuration(time.Since(started))))
}

func (s *housekeepingScheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopCh) })

	s.logger.Info("Stopping housekeeping scheduler")

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
