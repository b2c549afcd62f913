package mail

import (
	"context"
	"log/slog"

	deliverycontext "warden/internal/delivery/context"
	"warden/internal/domain/service"
)

// logSender writes the email to the log instead of sending it. Local development only:
// the action URL carries a live token and is logged at debug level.
type logSender struct {
	logger *slog.Logger
}

// NewLogSender creates the development sender.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, email *service.ActionEmail) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("[LogMail] Action email queued",
		slog.String("purpose", string(email.Purpose)),
		slog.String("to", email.To),
	)
	logger.Debug("[LogMail] Action link", slog.String("action_url", email.ActionURL))

	return nil
}

func (s *logSender) Close() error {
	return nil
}
