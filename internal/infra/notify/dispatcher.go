// Package notify renders notification messages and hands them to a mail transport.
package notify

import (
	"context"
	"log/slog"
	"strings"

	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/pkg/errs"
)

var ErrNoRecipient = errs.New("notification has no recipient")

type Email struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers one rendered email.
type Mailer interface {
	Deliver(ctx context.Context, email Email) error
}

type Dispatcher struct {
	mailer  Mailer
	layouts map[notification.Kind]layout
	logger  *slog.Logger
}

func NewDispatcher(mailer Mailer, logger *slog.Logger) (*Dispatcher, error) {
	layouts, err := loadLayouts()
	if err != nil {
		return nil, err
	}
	return &Dispatcher{mailer: mailer, layouts: layouts, logger: logger}, nil
}

func (d *Dispatcher) Send(ctx context.Context, msg notification.Message) error {
	to := strings.TrimSpace(msg.To)
	if to == "" {
		return errs.Wrap(ErrNoRecipient, msg.Kind.String())
	}
	l, ok := d.layouts[msg.Kind]
	if !ok {
		return errs.Wrap(ErrUnknownKind, msg.Kind.String())
	}

	email, err := l.render(msg.Data)
	if err != nil {
		return errs.Wrap(err, "render "+msg.Kind.String())
	}
	email.To = to
	if msg.Kind == notification.KindBookingConfirmation {
		email.ToName = msg.Data.ClientName
	} else {
		email.ToName = msg.Data.BusinessName
	}

	if err := d.mailer.Deliver(ctx, email); err != nil {
		return errs.Wrap(err, "deliver "+msg.Kind.String())
	}
	d.logger.Info("Notification sent",
		slog.String("kind", msg.Kind.String()),
		slog.String("slug", msg.Data.BusinessSlug))
	return nil
}
