package mail

import (
	"context"
	"fmt"
	"log/slog"

	"warden/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// pubSubSender publishes action emails to a Google Cloud Pub/Sub topic.
type pubSubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewPubSubSender connects to Pub/Sub and verifies that the topic exists.
func NewPubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EmailSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub mail sender initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &pubSubSender{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Send blocks until Pub/Sub acknowledges the message.
func (s *pubSubSender) Send(ctx context.Context, email *service.ActionEmail) error {
	data, attributes, err := encode(email)
	if err != nil {
		return err
	}

	serverID, err := s.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.logger.Debug("[GooglePubSub] Action email published",
		slog.String("purpose", string(email.Purpose)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (s *pubSubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
