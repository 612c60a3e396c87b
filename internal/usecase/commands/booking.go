package commands

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/internal/usecase/quota"
	"agenda-engine/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidBookingInput = errs.New("invalid booking request")
	ErrBookingFailed       = errs.New("could not complete booking")
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	config    queries.ConfigQueries
	quota     quota.Checker
	checker   queries.AvailabilityQueries
	access    credential.AccessProvider
	calendar  shared.CalendarProvider
	uow       shared.UnitOfWork
	notifier  shared.Notifier
	publisher shared.EventPublisher
	factory   *appointment.Factory
	metrics   shared.Metrics
	clock     clock.Clock
	logger    *slog.Logger
	links     Links
	timeouts  shared.Timeouts
}

func NewBookingCommands(
	config queries.ConfigQueries,
	quotaChecker quota.Checker,
	checker queries.AvailabilityQueries,
	access credential.AccessProvider,
	calendar shared.CalendarProvider,
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	publisher shared.EventPublisher,
	factory *appointment.Factory,
	metrics shared.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
	links Links,
	timeouts shared.Timeouts,
) BookingCommands {
	return &bookingCommandsImpl{
		config:    config,
		quota:     quotaChecker,
		checker:   checker,
		access:    access,
		calendar:  calendar,
		uow:       uow,
		notifier:  notifier,
		publisher: publisher,
		factory:   factory,
		metrics:   metrics,
		clock:     clk,
		logger:    logger,
		links:     links,
		timeouts:  timeouts,
	}
}

// CreateBooking returns a rejection as a result with a nil error.
// A non-nil error means the request was invalid, the business unknown, or the booking failed.
func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	ctx, span := otel.Tracer("agenda-engine/booking").Start(ctx, "booking.create")
	span.SetAttributes(attribute.String("business.slug", req.Slug))
	defer span.End()

	client, err := appointment.NewClientInfo(req.ClientName, req.ClientEmail, req.ClientPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}
	date, err := localtime.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}
	tm, err := localtime.ParseTime(req.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}
	if req.DurationMinutes != nil && !queries.ValidDuration(*req.DurationMinutes) {
		return nil, ErrInvalidBookingInput
	}

	p, err := uc.config.Resolve(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	d := p.SlotDuration()
	if req.DurationMinutes != nil {
		d = time.Duration(*req.DurationMinutes) * time.Minute
	}
	window, err := slot.NewWindow(localtime.At(date, tm, p.Location()), d)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingInput)
	}

	if !p.SubscriptionActive(uc.clock.Now()) {
		return uc.reject(p, shared.ReasonSubscriptionInactive), nil
	}

	decision := uc.quota.Check(ctx, p)
	if !decision.Allowed {
		return uc.reject(p, shared.ReasonQuotaExceeded), nil
	}

	var access *shared.Access
	assessment, err := uc.checker.Assess(ctx, p, date, window)
	switch {
	case err != nil:
		// Capacity is still enforced by the insert.
		uc.metrics.SourceFallback(p.Slug())
		uc.logger.Warn("availability lookup failed, booking without calendar",
			"slug", p.Slug(), "error", err.Error())
	case !assessment.Available:
		return uc.reject(p, assessment.Reason), nil
	default:
		access = assessment.Access
	}

	var eventID *string
	if access != nil {
		eventID = uc.mirror(ctx, p, *access, client, window)
	}

	appt, token, err := uc.factory.CreateAppointment(p.Slug(), client, date, window, eventID)
	if err != nil {
		uc.discardEvent(ctx, p, access, eventID)
		uc.metrics.BookingOutcome(outcomeFailed)
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	if err := uc.persist(ctx, appt); err != nil {
		uc.discardEvent(ctx, p, access, eventID)
		if infra.IsKind(err, infra.KindCapacityExceeded) {
			reason := shared.ReasonSlotOccupied
			if infra.ViolatedConstraint(err) == infra.ConstraintMaxPerDay {
				reason = shared.ReasonDayFull
			}
			uc.logger.Info("booking lost capacity race", "slug", p.Slug(), "reason", reason.String())
			return uc.reject(p, reason), nil
		}
		uc.metrics.BookingOutcome(outcomeFailed)
		span.SetStatus(codes.Error, "persist failed")
		uc.logger.Error("failed to persist appointment", "slug", p.Slug(), "error", err.Error())
		return nil, errs.Mark(err, ErrBookingFailed)
	}

	uc.metrics.BookingOutcome(outcomeAccepted)
	uc.quota.Booked(ctx, p, decision)
	uc.afterBooking(ctx, p, appt, token)

	id := appt.ID()
	return &BookingResult{
		Accepted:      true,
		AppointmentID: &id,
		Mirrored:      appt.Mirrored(),
		CancelToken:   token.String(),
		Start:         window.Start,
		End:           window.End,
	}, nil
}

func (uc *bookingCommandsImpl) persist(ctx context.Context, appt *appointment.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeouts.Storage)
	defer cancel()

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Create(ctx, tx.DB(), appt)
	})
}

func (uc *bookingCommandsImpl) reject(p *business.Profile, reason shared.Reason) *BookingResult {
	uc.metrics.BookingOutcome(outcomeRejected)
	uc.logger.Info("booking rejected", "slug", p.Slug(), "reason", reason.String())
	return rejected(reason)
}

// mirror never fails the booking; it returns nil when no event was created.
func (uc *bookingCommandsImpl) mirror(
	ctx context.Context,
	p *business.Profile,
	access shared.Access,
	client appointment.ClientInfo,
	w slot.Window,
) *string {
	ev := shared.CalendarEvent{
		Summary:       "Appointment: " + client.Name(),
		Description:   describeClient(client),
		Start:         w.Start,
		End:           w.End,
		TimeZone:      p.Location().String(),
		AttendeeEmail: client.Email(),
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeouts.Provider)
	defer cancel()

	id, err := uc.calendar.CreateEvent(ctx, access, ev)
	if err != nil {
		uc.logger.Warn("calendar mirror failed, keeping booking local",
			"slug", p.Slug(), "error", err.Error())
		if errs.Is(err, shared.ErrProviderPermanent) {
			uc.access.ReportPermanent(ctx, p)
		}
		return nil
	}
	return &id
}

func (uc *bookingCommandsImpl) discardEvent(ctx context.Context, p *business.Profile, access *shared.Access, eventID *string) {
	if access == nil || eventID == nil {
		return
	}
	err := shared.Detached(ctx, uc.timeouts.Provider, func(ctx context.Context) error {
		return uc.calendar.DeleteEvent(ctx, *access, *eventID)
	})
	if err != nil {
		uc.logger.Warn("failed to remove orphaned calendar event",
			"slug", p.Slug(), "event_id", *eventID, "error", err.Error())
	}
}

func (uc *bookingCommandsImpl) afterBooking(ctx context.Context, p *business.Profile, appt *appointment.Appointment, token appointment.CancelToken) {
	loc := p.Location()
	data := notification.Data{
		BusinessName: p.Name(),
		BusinessSlug: p.Slug(),
		ClientName:   appt.Client().Name(),
		ClientEmail:  appt.Client().Email(),
		ClientPhone:  appt.Client().Phone(),
		Date:         appt.Date().String(),
		Time:         appt.Window().Start.In(loc).Format(localtime.TimeLayout),
		CancelURL:    uc.links.CancelURL(token.String()),
	}

	uc.send(ctx, notification.Message{Kind: notification.KindBookingConfirmation, To: appt.Client().Email(), Data: data})
	if p.OwnerEmail() != "" {
		uc.send(ctx, notification.Message{Kind: notification.KindOwnerNewBooking, To: p.OwnerEmail(), Data: data})
	}

	evt := shared.BookingEvent{
		Type:          shared.BookingCreated,
		AppointmentID: appt.ID(),
		BusinessSlug:  p.Slug(),
		Start:         appt.Window().Start,
		End:           appt.Window().End,
		Mirrored:      appt.Mirrored(),
		OccurredAt:    uc.clock.Now(),
	}
	err := shared.Detached(ctx, uc.timeouts.Notify, func(ctx context.Context) error {
		return uc.publisher.Publish(ctx, evt)
	})
	if err != nil {
		uc.logger.Warn("failed to publish booking event", "slug", p.Slug(), "error", err.Error())
	}
}

func (uc *bookingCommandsImpl) send(ctx context.Context, msg notification.Message) {
	err := shared.Detached(ctx, uc.timeouts.Notify, func(ctx context.Context) error {
		return uc.notifier.Send(ctx, msg)
	})
	if err != nil {
		uc.logger.Warn("notification failed", "kind", msg.Kind.String(), "error", err.Error())
	}
}

func describeClient(c appointment.ClientInfo) string {
	desc := "Client: " + c.Name() + "\nEmail: " + c.Email()
	if c.Phone() != "" {
		desc += "\nPhone: " + c.Phone()
	}
	return desc
}
