// Package cache provides the redis client and the token-bucket limiter built on it.
package cache

import (
	"context"
	"log/slog"

	"warden/config"
	"warden/internal/domain/lifecycle"
	"warden/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when no redis section is configured.
func NewRedisClient(params Params) *redis.Client {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The limiter fails open, so an unreachable redis must not block startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis unreachable, rate limiting disabled until it recovers",
					slog.String("addr", cfg.Addr),
					slog.Any("error", errors.Wrap(err, "failed to ping redis")),
				)

				return nil
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
