package queries

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidAvailabilityInput = errs.New("invalid availability request")
	ErrAvailabilityLookup       = errs.New("availability lookup failed")
)

const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480
)

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, req AvailabilityRequest) (*Assessment, error)
	Assess(ctx context.Context, p *business.Profile, date civil.Date, w slot.Window) (*Assessment, error)
	AvailableHours(ctx context.Context, slug, date string) (*AvailableHoursView, error)
}

type availabilityQueriesImpl struct {
	config   ConfigQueries
	access   credential.AccessProvider
	provider shared.CalendarProvider
	local    IntervalSource
	metrics  shared.Metrics
	clock    clock.Clock
	logger   *slog.Logger
	timeouts shared.Timeouts
}

func NewAvailabilityQueries(
	config ConfigQueries,
	access credential.AccessProvider,
	provider shared.CalendarProvider,
	store AppointmentReadStore,
	metrics shared.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
	timeouts shared.Timeouts,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		config:   config,
		access:   access,
		provider: provider,
		local:    NewLocalSource(store, timeouts.Storage),
		metrics:  metrics,
		clock:    clk,
		logger:   logger,
		timeouts: timeouts,
	}
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, req AvailabilityRequest) (*Assessment, error) {
	date, err := localtime.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityInput)
	}
	tm, err := localtime.ParseTime(req.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityInput)
	}
	if req.DurationMinutes != nil && !ValidDuration(*req.DurationMinutes) {
		return nil, ErrInvalidAvailabilityInput
	}

	p, err := q.config.Resolve(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	d := p.SlotDuration()
	if req.DurationMinutes != nil {
		d = time.Duration(*req.DurationMinutes) * time.Minute
	}
	w, err := slot.NewWindow(localtime.At(date, tm, p.Location()), d)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityInput)
	}

	return q.Assess(ctx, p, date, w)
}

// Assess is read-only. The storage guard on insert remains the final arbiter.
func (q *availabilityQueriesImpl) Assess(ctx context.Context, p *business.Profile, date civil.Date, w slot.Window) (*Assessment, error) {
	ctx, span := otel.Tracer("agenda-engine/availability").Start(ctx, "availability.assess")
	span.SetAttributes(attribute.String("business.slug", p.Slug()), attribute.String("date", date.String()))
	defer span.End()

	a := &Assessment{Profile: p, Date: date, Window: w}

	if err := slot.Fits(p, date, w, q.clock.Now()); err != nil {
		a.Reason = shared.ReasonOutsideWorkingHours
		if errs.Is(err, slot.ErrInPast) {
			a.Reason = shared.ReasonSlotInPast
		}
		return a, nil
	}

	busy, source, access, err := q.busy(ctx, p, date)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityLookup)
	}
	a.Source = source
	a.Access = access
	span.SetAttributes(attribute.String("source", source), attribute.Int("busy", len(busy)))

	switch {
	case len(busy) >= p.MaxPerDay():
		a.Reason = shared.ReasonDayFull
	case w.CountOverlapping(busy) >= p.MaxPerHour():
		a.Reason = shared.ReasonSlotOccupied
	default:
		a.Available = true
	}
	return a, nil
}

func (q *availabilityQueriesImpl) AvailableHours(ctx context.Context, slug, date string) (*AvailableHoursView, error) {
	d, err := localtime.ParseDate(date)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailabilityInput)
	}

	p, err := q.config.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := &AvailableHoursView{Date: d.String(), Hours: []string{}}
	if !p.ScheduleOn(d).Enabled() {
		return view, nil
	}

	busy, _, _, err := q.busy(ctx, p, d)
	if err != nil {
		return nil, errs.Mark(err, ErrAvailabilityLookup)
	}
	if len(busy) >= p.MaxPerDay() {
		return view, nil
	}

	for w := range slot.Generate(p, d, p.SlotDuration(), q.clock.Now()) {
		if w.CountOverlapping(busy) >= p.MaxPerHour() {
			continue
		}
		view.Hours = append(view.Hours, w.Start.In(p.Location()).Format(localtime.TimeLayout))
	}
	return view, nil
}

// busy reads the external calendar when access is available and falls back to local appointments.
func (q *availabilityQueriesImpl) busy(ctx context.Context, p *business.Profile, date civil.Date) ([]slot.Window, string, *shared.Access, error) {
	access, err := q.access.Acquire(ctx, p)
	if err != nil {
		if errs.Is(err, shared.ErrProviderTransient) {
			q.metrics.SourceFallback(p.Slug())
		}
		busy, lerr := q.local.Busy(ctx, p, date)
		return busy, q.local.Name(), nil, lerr
	}

	external := NewExternalSource(q.provider, access, q.timeouts.Provider)
	busy, err := external.Busy(ctx, p, date)
	if err == nil {
		return busy, external.Name(), &access, nil
	}

	q.metrics.SourceFallback(p.Slug())
	q.logger.Warn("external calendar read failed, using local appointments",
		"slug", p.Slug(), "date", date.String(), "error", err.Error())

	var mirrorAccess *shared.Access
	if errs.Is(err, shared.ErrProviderPermanent) {
		q.access.ReportPermanent(ctx, p)
	} else {
		mirrorAccess = &access
	}

	busy, err = q.local.Busy(ctx, p, date)
	return busy, q.local.Name(), mirrorAccess, err
}

func ValidDuration(minutes int) bool {
	return minutes >= MinDurationMinutes && minutes <= MaxDurationMinutes
}
