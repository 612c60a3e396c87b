package notify

import (
	"context"
	"log/slog"
)

// LogMailer writes emails to the log instead of sending them. Used in development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (l *LogMailer) Deliver(_ context.Context, email Email) error {
	l.logger.Info("[DEV MAIL] "+email.Subject,
		slog.String("to", email.To),
		slog.String("body", email.Text))
	return nil
}
