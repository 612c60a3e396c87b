package commands

import (
	"context"
	"log/slog"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/internal/usecase/shared"

	"go.opentelemetry.io/otel"
)

var (
	ErrCancelTokenNotFound = errs.New("no active appointment for cancel token")
	ErrCancellationFailed  = errs.New("could not cancel appointment")
)

type CancellationCommands interface {
	CancelBooking(ctx context.Context, token string) error
}

type cancellationCommandsImpl struct {
	config    queries.ConfigQueries
	access    credential.AccessProvider
	calendar  shared.CalendarProvider
	uow       shared.UnitOfWork
	notifier  shared.Notifier
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
	timeouts  shared.Timeouts
}

func NewCancellationCommands(
	config queries.ConfigQueries,
	access credential.AccessProvider,
	calendar shared.CalendarProvider,
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
	timeouts shared.Timeouts,
) CancellationCommands {
	return &cancellationCommandsImpl{
		config:    config,
		access:    access,
		calendar:  calendar,
		uow:       uow,
		notifier:  notifier,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		timeouts:  timeouts,
	}
}

// CancelBooking is authorised by possession of the token alone. A second call
// with the same token reports ErrCancelTokenNotFound.
func (uc *cancellationCommandsImpl) CancelBooking(ctx context.Context, raw string) error {
	ctx, span := otel.Tracer("agenda-engine/booking").Start(ctx, "booking.cancel")
	defer span.End()

	token, err := appointment.ParseCancelToken(raw)
	if err != nil {
		return ErrCancelTokenNotFound
	}

	appt, err := uc.cancel(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCancelTokenNotFound
		}
		uc.logger.Error("failed to cancel appointment", "error", err.Error())
		return errs.Mark(err, ErrCancellationFailed)
	}

	uc.logger.Info("appointment cancelled", "slug", appt.BusinessSlug(), "appointment_id", appt.ID().String())
	uc.afterCancel(ctx, appt)
	return nil
}

func (uc *cancellationCommandsImpl) cancel(ctx context.Context, token appointment.CancelToken) (*appointment.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeouts.Storage)
	defer cancel()

	var appt *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		appt, err = tx.Appointments().CancelByTokenDigest(ctx, tx.DB(), token.Digest(), uc.clock.Now())
		return err
	})
	return appt, err
}

// afterCancel is best-effort; the cancellation is already committed.
func (uc *cancellationCommandsImpl) afterCancel(ctx context.Context, appt *appointment.Appointment) {
	p, err := uc.config.Resolve(ctx, appt.BusinessSlug())
	if err != nil {
		uc.logger.Warn("cancelled appointment business unavailable", "slug", appt.BusinessSlug(), "error", err.Error())
		return
	}

	if eventID := appt.ExternalEventID(); eventID != nil {
		access, err := uc.access.Acquire(ctx, p)
		if err == nil {
			err = shared.Detached(ctx, uc.timeouts.Provider, func(ctx context.Context) error {
				return uc.calendar.DeleteEvent(ctx, access, *eventID)
			})
		}
		if err != nil {
			uc.logger.Warn("calendar event left behind after cancellation",
				"slug", p.Slug(), "event_id", *eventID, "error", err.Error())
		}
	}

	if p.OwnerEmail() != "" {
		msg := notification.Message{
			Kind: notification.KindOwnerCancellation,
			To:   p.OwnerEmail(),
			Data: notification.Data{
				BusinessName: p.Name(),
				BusinessSlug: p.Slug(),
				ClientName:   appt.Client().Name(),
				ClientEmail:  appt.Client().Email(),
				ClientPhone:  appt.Client().Phone(),
				Date:         appt.Date().String(),
				Time:         appt.Window().Start.In(p.Location()).Format(localtime.TimeLayout),
			},
		}
		err = shared.Detached(ctx, uc.timeouts.Notify, func(ctx context.Context) error {
			return uc.notifier.Send(ctx, msg)
		})
		if err != nil {
			uc.logger.Warn("notification failed", "kind", msg.Kind.String(), "error", err.Error())
		}
	}

	evt := shared.BookingEvent{
		Type:          shared.BookingCancelled,
		AppointmentID: appt.ID(),
		BusinessSlug:  p.Slug(),
		Start:         appt.Window().Start,
		End:           appt.Window().End,
		Mirrored:      appt.Mirrored(),
		OccurredAt:    uc.clock.Now(),
	}
	err = shared.Detached(ctx, uc.timeouts.Notify, func(ctx context.Context) error {
		return uc.publisher.Publish(ctx, evt)
	})
	if err != nil {
		uc.logger.Warn("failed to publish booking event", "slug", p.Slug(), "error", err.Error())
	}
}
