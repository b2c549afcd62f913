package mail

import (
	"context"
	"log/slog"

	"warden/config"
	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for EmailSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEmailSender creates the EmailSender selected by email.provider and closes it on shutdown.
func NewEmailSender(params SenderParams) (service.EmailSender, error) {
	sender, err := newSender(params.Ctx, params.Config.Email, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EmailSender")

			return sender.Close()
		},
	})

	return sender, nil
}

func newSender(ctx context.Context, cfg config.EmailConfig, logger *slog.Logger) (service.EmailSender, error) {
	switch cfg.Provider {
	case "", config.EmailProviderLog:
		logger.Info("Using log mail sender")

		return NewLogSender(logger), nil

	case config.EmailProviderPubSub:
		if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
			return nil, errors.New("email.pubsub.projectId and email.pubsub.topicId are required for pubsub provider")
		}

		return NewPubSubSender(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)

	case config.EmailProviderAMQP:
		if cfg.AMQP.URL == "" || cfg.AMQP.Queue == "" {
			return nil, errors.New("email.amqp.url and email.amqp.queue are required for amqp provider")
		}

		return NewAMQPSender(cfg.AMQP.URL, cfg.AMQP.Queue, logger)

	case config.EmailProviderGoCloud:
		if cfg.GoCloud.TopicURL == "" {
			return nil, errors.New("email.gocloud.topicUrl is required for gocloud provider")
		}

		return NewGoCloudSender(ctx, cfg.GoCloud.TopicURL, logger)

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEmailSender),
)
