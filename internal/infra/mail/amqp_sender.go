package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"warden/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpSender publishes persistent messages to a durable RabbitMQ queue through the default exchange.
type amqpSender struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

// NewAMQPSender dials the broker and declares the queue.
func NewAMQPSender(url, queue string, logger *slog.Logger) (service.EmailSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq: dial failed")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "rabbitmq: channel open failed")
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "rabbitmq: queue declare %s failed", queue)
	}

	logger.Info("RabbitMQ mail sender initialized", slog.String("queue", queue))

	return &amqpSender{conn: conn, channel: channel, queue: queue, logger: logger}, nil
}

func (s *amqpSender) Send(ctx context.Context, email *service.ActionEmail) error {
	data, attributes, err := encode(email)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range attributes {
		headers[k] = v
	}

	publishing := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		CorrelationId: email.RequestID,
		Headers:       headers,
		Body:          data,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.channel.PublishWithContext(ctx, "", s.queue, false, false, publishing); err != nil {
		return errors.Wrap(err, "rabbitmq: publish failed")
	}

	return nil
}

func (s *amqpSender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		s.logger.Warn("rabbitmq: channel close failed", slog.Any("error", err))
	}

	return errors.WithStack(s.conn.Close())
}
