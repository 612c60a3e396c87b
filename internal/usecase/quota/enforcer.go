package quota

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/localtime"
	"agenda-engine/internal/usecase/shared"
)

// nearLimitMargin is how many bookings before the limit the owner is warned.
const nearLimitMargin = 2

type Decision struct {
	Allowed    bool
	Limited    bool
	CountSoFar int
	Limit      int
	// Month is the business-local "YYYY-MM" the count covers; empty when nothing was counted.
	Month string
}

func (d Decision) nearLimit() bool {
	return d.Allowed && d.Limited && d.Month != "" && d.CountSoFar >= d.Limit-nearLimitMargin
}

type UsageCounter interface {
	CountActiveBetween(ctx context.Context, slug string, from, to time.Time) (int, error)
}

type PlanLimits interface {
	// MonthlyLimit returns false for plans without a monthly cap.
	MonthlyLimit(plan business.PlanTier) (int, bool)
}

type Checker interface {
	Check(ctx context.Context, p *business.Profile) Decision
	// Booked runs once the booking admitted by d is stored.
	Booked(ctx context.Context, p *business.Profile, d Decision)
}

type Enforcer struct {
	counter  UsageCounter
	limits   PlanLimits
	uow      shared.UnitOfWork
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
	logger   *slog.Logger
	timeouts shared.Timeouts
}

func NewEnforcer(
	counter UsageCounter,
	limits PlanLimits,
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	metrics shared.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
	timeouts shared.Timeouts,
) *Enforcer {
	return &Enforcer{
		counter:  counter,
		limits:   limits,
		uow:      uow,
		notifier: notifier,
		metrics:  metrics,
		clock:    clk,
		logger:   logger,
		timeouts: timeouts,
	}
}

// Check fails open: a counting error allows the booking.
func (e *Enforcer) Check(ctx context.Context, p *business.Profile) Decision {
	limit, limited := e.limits.MonthlyLimit(p.Plan())
	if !limited {
		return Decision{Allowed: true}
	}

	now := e.clock.Now()
	from, to := localtime.MonthBounds(now, p.Location())

	countCtx, cancel := context.WithTimeout(ctx, e.timeouts.Storage)
	count, err := e.counter.CountActiveBetween(countCtx, p.Slug(), from, to)
	cancel()
	if err != nil {
		e.metrics.QuotaFailOpen(p.Slug())
		e.logger.Warn("quota count failed, allowing booking",
			"slug", p.Slug(), "error", err.Error())
		return Decision{Allowed: true, Limited: true, Limit: limit}
	}

	return Decision{
		Allowed:    count < limit,
		Limited:    true,
		CountSoFar: count,
		Limit:      limit,
		Month:      localtime.MonthKey(now, p.Location()),
	}
}

// Booked sends the near-limit notice, claimed at most once per business and month.
func (e *Enforcer) Booked(ctx context.Context, p *business.Profile, d Decision) {
	if !d.nearLimit() || p.NearLimitNotifiedMonth() == d.Month || p.OwnerEmail() == "" {
		return
	}

	var marked bool
	err := shared.Detached(ctx, e.timeouts.Storage, func(ctx context.Context) error {
		return e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			marked, err = tx.Businesses().MarkNearLimitNotified(ctx, tx.DB(), p.Slug(), d.Month)
			return err
		})
	})
	if err != nil {
		e.logger.Error("failed to record near-limit notice", "slug", p.Slug(), "error", err.Error())
		return
	}
	if !marked {
		return
	}

	msg := notification.Message{
		Kind: notification.KindNearQuota,
		To:   p.OwnerEmail(),
		Data: notification.Data{
			BusinessName: p.Name(),
			BusinessSlug: p.Slug(),
			Count:        d.CountSoFar + 1,
			Limit:        d.Limit,
		},
	}
	err = shared.Detached(ctx, e.timeouts.Notify, func(ctx context.Context) error {
		return e.notifier.Send(ctx, msg)
	})
	if err != nil {
		e.logger.Error("failed to send near-limit notice", "slug", p.Slug(), "error", err.Error())
	}
}
