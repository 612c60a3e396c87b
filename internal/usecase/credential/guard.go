// Package credential turns a stored refresh credential into provider access and
// tracks disconnection episodes so each one produces a single reconnection notice.
package credential

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrNoCredential      = errs.New("business has no calendar credential")
	ErrDisconnectionOpen = errs.New("calendar disconnected pending reconnection")
)

type Config struct {
	Attempts     int
	Backoff      time.Duration
	ReconnectURL string
	Timeouts     shared.Timeouts
}

// AccessProvider is what availability and booking depend on.
type AccessProvider interface {
	Acquire(ctx context.Context, p *business.Profile) (shared.Access, error)
	ReportPermanent(ctx context.Context, p *business.Profile)
}

type Guard struct {
	provider shared.CalendarProvider
	uow      shared.UnitOfWork
	notifier shared.Notifier
	metrics  shared.Metrics
	clock    clock.Clock
	logger   *slog.Logger
	cfg      Config
}

func NewGuard(
	provider shared.CalendarProvider,
	uow shared.UnitOfWork,
	notifier shared.Notifier,
	metrics shared.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
	cfg Config,
) *Guard {
	if cfg.Attempts <= 0 {
		cfg.Attempts = 1
	}
	return &Guard{
		provider: provider,
		uow:      uow,
		notifier: notifier,
		metrics:  metrics,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
	}
}

// Acquire returns access for p or an error marked shared.ErrProviderTransient or shared.ErrProviderPermanent.
func (g *Guard) Acquire(ctx context.Context, p *business.Profile) (shared.Access, error) {
	if !p.HasCredential() {
		return shared.Access{}, errs.Mark(ErrNoCredential, shared.ErrProviderPermanent)
	}
	if p.DisconnectionOpen() {
		return shared.Access{}, errs.Mark(ErrDisconnectionOpen, shared.ErrProviderPermanent)
	}

	ctx, span := otel.Tracer("agenda-engine/credential").Start(ctx, "credential.acquire")
	span.SetAttributes(attribute.String("business.slug", p.Slug()))
	defer span.End()

	var lastErr error
	for attempt := 0; attempt < g.cfg.Attempts; attempt++ {
		if attempt > 0 {
			wait := g.cfg.Backoff * time.Duration(1<<(attempt-1))
			select {
			case <-ctx.Done():
				return shared.Access{}, errs.Mark(ctx.Err(), shared.ErrProviderTransient)
			case <-time.After(wait):
			}
		}

		access, err := g.exchange(ctx, p.RefreshToken())
		if err == nil {
			return access, nil
		}
		lastErr = err

		if errs.Is(err, shared.ErrProviderPermanent) {
			span.SetStatus(codes.Error, "credential rejected")
			g.logger.Warn("calendar credential rejected, switching to local mode",
				"slug", p.Slug(), "error", err.Error())
			g.openEpisode(ctx, p)
			return shared.Access{}, err
		}

		g.logger.Warn("calendar credential exchange failed",
			"slug", p.Slug(), "attempt", attempt+1, "error", err.Error())
	}

	span.SetStatus(codes.Error, "provider unavailable")
	return shared.Access{}, errs.Mark(lastErr, shared.ErrProviderTransient)
}

// ReportPermanent opens a disconnection episode after a later provider call rejected the credential.
func (g *Guard) ReportPermanent(ctx context.Context, p *business.Profile) {
	if !p.HasCredential() || p.DisconnectionOpen() {
		return
	}
	g.openEpisode(ctx, p)
}

func (g *Guard) exchange(ctx context.Context, refreshToken string) (shared.Access, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeouts.Provider)
	defer cancel()

	access, err := g.provider.Exchange(ctx, refreshToken)
	if err != nil {
		if errs.Is(err, shared.ErrProviderPermanent) || errs.Is(err, shared.ErrProviderTransient) {
			return shared.Access{}, err
		}
		return shared.Access{}, errs.Mark(err, shared.ErrProviderTransient)
	}
	return access, nil
}

// openEpisode records the episode first and notifies only when this call made the transition.
func (g *Guard) openEpisode(ctx context.Context, p *business.Profile) {
	var opened bool
	err := shared.Detached(ctx, g.cfg.Timeouts.Storage, func(ctx context.Context) error {
		return g.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			opened, err = tx.Businesses().OpenDisconnection(ctx, tx.DB(), p.Slug(), g.clock.Now())
			return err
		})
	})
	if err != nil {
		g.logger.Error("failed to record calendar disconnection", "slug", p.Slug(), "error", err.Error())
		return
	}
	if !opened {
		return
	}

	if p.OwnerEmail() == "" {
		g.logger.Warn("calendar disconnected but owner has no contact email", "slug", p.Slug())
		return
	}

	msg := notification.Message{
		Kind: notification.KindReconnectNeeded,
		To:   p.OwnerEmail(),
		Data: notification.Data{
			BusinessName: p.Name(),
			BusinessSlug: p.Slug(),
			ReconnectURL: g.cfg.ReconnectURL + "?slug=" + url.QueryEscape(p.Slug()),
		},
	}
	err = shared.Detached(ctx, g.cfg.Timeouts.Notify, func(ctx context.Context) error {
		return g.notifier.Send(ctx, msg)
	})
	if err != nil {
		g.logger.Error("failed to send reconnection notice", "slug", p.Slug(), "error", err.Error())
		return
	}
	g.metrics.ReconnectNotice(p.Slug())
	g.logger.Info("reconnection notice sent", "slug", p.Slug())
}
