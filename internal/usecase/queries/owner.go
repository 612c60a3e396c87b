package queries

import (
	"context"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/localtime"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrInvalidCursor       = errs.New("invalid cursor")
	ErrInvalidRange        = errs.New("invalid date range")
)

type PlanLimits interface {
	MonthlyLimit(plan business.PlanTier) (int, bool)
}

type OwnerQueries interface {
	Usage(ctx context.Context, slug string) (*UsageView, error)
	ListAppointments(ctx context.Context, slug string, req AppointmentListRequest, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
	GetAppointment(ctx context.Context, slug string, id uuid.UUID) (*AppointmentView, error)
}

type ownerQueriesImpl struct {
	config ConfigQueries
	store  AppointmentReadStore
	limits PlanLimits
	clock  clock.Clock
}

func NewOwnerQueries(config ConfigQueries, store AppointmentReadStore, limits PlanLimits, clk clock.Clock) OwnerQueries {
	return &ownerQueriesImpl{config: config, store: store, limits: limits, clock: clk}
}

func (q *ownerQueriesImpl) Usage(ctx context.Context, slug string) (*UsageView, error) {
	p, err := q.config.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	from, to := localtime.MonthBounds(now, p.Location())
	count, err := q.store.CountActiveBetween(ctx, slug, from, to)
	if err != nil {
		return nil, err
	}

	view := &UsageView{
		Slug:  slug,
		Plan:  p.Plan().String(),
		Month: localtime.MonthKey(now, p.Location()),
		Count: count,
	}
	if limit, ok := q.limits.MonthlyLimit(p.Plan()); ok {
		view.Limit = &limit
	}
	return view, nil
}

func (q *ownerQueriesImpl) ListAppointments(ctx context.Context, slug string, req AppointmentListRequest, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	p, err := q.config.Resolve(ctx, slug)
	if err != nil {
		return nil, nil, err
	}

	from, to, err := dayRange(req.From, req.To, p.Location())
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, ErrInvalidRange
	}
	filter := AppointmentFilter{From: from, To: to, IncludeCancelled: req.IncludeCancelled}

	limit = ValidateLimit(limit)
	filter.Limit = limit + 1
	if cursor != nil && cursor.After != "" {
		lastStart, lastID, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		filter.AfterStart = &lastStart
		filter.AfterID = &lastID
	}

	rows, err := q.store.ListForOwner(ctx, slug, filter)
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *ownerQueriesImpl) GetAppointment(ctx context.Context, slug string, id uuid.UUID) (*AppointmentView, error) {
	v, err := q.store.FindByID(ctx, slug, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return v, nil
}

// dayRange converts optional local dates into [from 00:00, to+1 00:00) in loc.
func dayRange(from, to string, loc *time.Location) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if from != "" {
		d, err := localtime.ParseDate(from)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidRange)
		}
		s, _ := localtime.DayBounds(d, loc)
		start = &s
	}
	if to != "" {
		d, err := localtime.ParseDate(to)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidRange)
		}
		_, e := localtime.DayBounds(d, loc)
		end = &e
	}
	return start, end, nil
}
