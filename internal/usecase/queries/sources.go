package queries

import (
	"context"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const (
	SourceExternal = "external"
	SourceLocal    = "local"
)

// IntervalSource lists the occupied windows of one business-local day.
type IntervalSource interface {
	Name() string
	Busy(ctx context.Context, p *business.Profile, date civil.Date) ([]slot.Window, error)
}

type AppointmentReadStore interface {
	ActiveWindowsBetween(ctx context.Context, slug string, from, to time.Time) ([]slot.Window, error)
	CountActiveBetween(ctx context.Context, slug string, from, to time.Time) (int, error)
	ListForOwner(ctx context.Context, slug string, filter AppointmentFilter) ([]*AppointmentView, error)
	FindByID(ctx context.Context, slug string, id uuid.UUID) (*AppointmentView, error)
}

type externalSource struct {
	provider shared.CalendarProvider
	access   shared.Access
	timeout  time.Duration
}

func NewExternalSource(provider shared.CalendarProvider, access shared.Access, timeout time.Duration) IntervalSource {
	return &externalSource{provider: provider, access: access, timeout: timeout}
}

func (s *externalSource) Name() string { return SourceExternal }

func (s *externalSource) Busy(ctx context.Context, p *business.Profile, date civil.Date) ([]slot.Window, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	from, to := localtime.DayBounds(date, p.Location())
	return s.provider.ListBusy(ctx, s.access, from, to)
}

type localSource struct {
	store   AppointmentReadStore
	timeout time.Duration
}

func NewLocalSource(store AppointmentReadStore, timeout time.Duration) IntervalSource {
	return &localSource{store: store, timeout: timeout}
}

func (s *localSource) Name() string { return SourceLocal }

func (s *localSource) Busy(ctx context.Context, p *business.Profile, date civil.Date) ([]slot.Window, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	from, to := localtime.DayBounds(date, p.Location())
	return s.store.ActiveWindowsBetween(ctx, p.Slug(), from, to)
}
