package mail

import (
	"context"
	"log/slog"

	"warden/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"
	_ "gocloud.dev/pubsub/rabbitpubsub"
)

// goCloudSender publishes to any gocloud.dev topic URL (mem://, rabbit://).
type goCloudSender struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewGoCloudSender opens the topic named by topicURL.
func NewGoCloudSender(ctx context.Context, topicURL string, logger *slog.Logger) (service.EmailSender, error) {
	topic, err := pubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("gocloud mail sender initialized", slog.String("topic_url", topicURL))

	return &goCloudSender{topic: topic, logger: logger}, nil
}

func (s *goCloudSender) Send(ctx context.Context, email *service.ActionEmail) error {
	data, attributes, err := encode(email)
	if err != nil {
		return err
	}

	if err := s.topic.Send(ctx, &pubsub.Message{Body: data, Metadata: attributes}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (s *goCloudSender) Close() error {
	return errors.WithStack(s.topic.Shutdown(context.Background()))
}
