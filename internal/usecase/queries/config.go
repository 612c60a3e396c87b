package queries

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/shared"
)

var (
	ErrBusinessNotFound = errs.New("business not found")
	ErrConfigLookup     = errs.New("business configuration lookup failed")
)

type BusinessReadStore interface {
	FindBySlug(ctx context.Context, slug string) (*business.RawConfig, error)
}

type ConfigQueries interface {
	Resolve(ctx context.Context, slug string) (*business.Profile, error)
	PublicConfig(ctx context.Context, slug string) (*PublicConfigView, error)
}

type configQueriesImpl struct {
	store    BusinessReadStore
	defaults business.Defaults
	logger   *slog.Logger
	timeouts shared.Timeouts
}

func NewConfigQueries(
	store BusinessReadStore,
	defaults business.Defaults,
	logger *slog.Logger,
	timeouts shared.Timeouts,
) ConfigQueries {
	return &configQueriesImpl{store: store, defaults: defaults, logger: logger, timeouts: timeouts}
}

func (q *configQueriesImpl) Resolve(ctx context.Context, slug string) (*business.Profile, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, q.timeouts.Storage)
	raw, err := q.store.FindBySlug(lookupCtx, slug)
	cancel()
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, errs.Mark(err, ErrConfigLookup)
	}

	p := business.Resolve(*raw, q.defaults)
	if p.ZoneFallback() {
		q.logger.Warn("invalid business timezone, using default",
			"slug", slug,
			"timezone", raw.Timezone,
			"fallback", q.defaults.Location.String())
	}
	return p, nil
}

func (q *configQueriesImpl) PublicConfig(ctx context.Context, slug string) (*PublicConfigView, error) {
	p, err := q.Resolve(ctx, slug)
	if err != nil {
		return nil, err
	}

	view := &PublicConfigView{
		Name:            p.Name(),
		Timezone:        p.Location().String(),
		DurationMinutes: p.SlotMinutes(),
		MaxPerDay:       p.MaxPerDay(),
		MaxPerHour:      p.MaxPerHour(),
		Plan:            p.Plan().String(),
		Days:            make(map[string]DayView, 7),
	}
	for _, wd := range p.WorkDays() {
		view.WorkDays = append(view.WorkDays, int(wd))
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := p.DayFor(wd)
		dv := DayView{Enabled: day.Enabled()}
		if day.Enabled() {
			dv.Start = localtime.FormatTime(day.Start())
			dv.End = localtime.FormatTime(day.End())
			if ls, le, ok := day.Lunch(); ok {
				dv.Lunch = &LunchView{Start: localtime.FormatTime(ls), End: localtime.FormatTime(le)}
			}
		}
		view.Days[wd.String()] = dv
	}
	return view, nil
}
