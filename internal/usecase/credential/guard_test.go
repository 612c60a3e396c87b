//go:build unit

package credential_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/credential"
	"agenda-engine/internal/usecase/shared"
	"agenda-engine/tests/common/builder"
	"agenda-engine/tests/common/uowtest"
	sharedmock "agenda-engine/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

type guardDeps struct {
	provider *sharedmock.MockCalendarProvider
	notifier *sharedmock.MockNotifier
	metrics  *sharedmock.MockMetrics
	harness  *uowtest.Harness
}

func newGuard(t *testing.T, attempts int) (*credential.Guard, *guardDeps) {
	ctrl := gomock.NewController(t)
	deps := &guardDeps{
		provider: sharedmock.NewMockCalendarProvider(ctrl),
		notifier: sharedmock.NewMockNotifier(ctrl),
		metrics:  sharedmock.NewMockMetrics(ctrl),
		harness:  uowtest.NewHarness(ctrl),
	}
	g := credential.NewGuard(
		deps.provider,
		deps.harness.UoW,
		deps.notifier,
		deps.metrics,
		clock.NewMockClock(fixedNow),
		uowtest.DiscardLogger(),
		credential.Config{
			Attempts:     attempts,
			Backoff:      time.Millisecond,
			ReconnectURL: "https://app.test/reconnect",
			Timeouts:     shared.DefaultTimeouts(),
		},
	)
	return g, deps
}

func permanent(msg string) error {
	return errs.Mark(errors.New(msg), shared.ErrProviderPermanent)
}

func transient(msg string) error {
	return errs.Mark(errors.New(msg), shared.ErrProviderTransient)
}

func TestGuard_Acquire(t *testing.T) {
	ctx := context.Background()
	access := shared.Access{Token: "ya29.token", Expiry: fixedNow.Add(time.Hour)}

	t.Run("success: exchange on first attempt", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), "refresh-1").Return(access, nil)

		got, err := g.Acquire(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, access, got)
	})

	t.Run("success: transient failures are retried", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		gomock.InOrder(
			deps.provider.EXPECT().Exchange(gomock.Any(), "refresh-1").Return(shared.Access{}, transient("503")),
			deps.provider.EXPECT().Exchange(gomock.Any(), "refresh-1").Return(shared.Access{}, errors.New("connection reset")),
			deps.provider.EXPECT().Exchange(gomock.Any(), "refresh-1").Return(access, nil),
		)

		got, err := g.Acquire(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, access, got)
	})

	t.Run("error: exhausted retries stay transient and open no episode", func(t *testing.T) {
		g, deps := newGuard(t, 2)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), "refresh-1").Return(shared.Access{}, transient("timeout")).Times(2)
		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := g.Acquire(ctx, p)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrProviderTransient))
		assert.False(t, errs.Is(err, shared.ErrProviderPermanent))
	})

	t.Run("error: no credential is permanent without a network call", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().WithoutRefreshToken().BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), gomock.Any()).Times(0)

		_, err := g.Acquire(ctx, p)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrProviderPermanent))
		assert.True(t, errs.Is(err, credential.ErrNoCredential))
	})

	t.Run("error: open disconnection episode skips the provider", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().
			WithRefreshToken("refresh-1").
			WithReconnectNotifiedAt(fixedNow.Add(-time.Hour)).
			BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := g.Acquire(ctx, p)
		require.Error(t, err)
		assert.True(t, errs.Is(err, credential.ErrDisconnectionOpen))
	})

	t.Run("error: rejected credential opens an episode and notifies the owner", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().WithSlug("acme shop").WithRefreshToken("revoked").BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), "revoked").Return(shared.Access{}, permanent("invalid_grant")).Times(1)
		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), "acme shop", fixedNow).Return(true, nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.KindReconnectNeeded, msg.Kind)
				assert.Equal(t, "owner@acme.test", msg.To)
				assert.Equal(t, "https://app.test/reconnect?slug=acme+shop", msg.Data.ReconnectURL)
				return nil
			})
		deps.metrics.EXPECT().ReconnectNotice("acme shop")

		_, err := g.Acquire(ctx, p)
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrProviderPermanent))
	})

	t.Run("error: episode already opened elsewhere sends nothing", func(t *testing.T) {
		g, deps := newGuard(t, 3)
		p := builder.NewBusinessBuilder().WithRefreshToken("revoked").BuildDomain()

		deps.provider.EXPECT().Exchange(gomock.Any(), "revoked").Return(shared.Access{}, permanent("invalid_grant"))
		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), "acme", fixedNow).Return(false, nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		_, err := g.Acquire(ctx, p)
		require.Error(t, err)
	})
}

func TestGuard_SingleNoticePerEpisode(t *testing.T) {
	ctx := context.Background()
	g, deps := newGuard(t, 1)
	p := builder.NewBusinessBuilder().WithRefreshToken("revoked").BuildDomain()

	var (
		mu     sync.Mutex
		opened bool
	)
	deps.provider.EXPECT().Exchange(gomock.Any(), "revoked").Return(shared.Access{}, permanent("invalid_grant")).AnyTimes()
	deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), "acme", gomock.Any()).DoAndReturn(
		func(context.Context, any, string, time.Time) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if opened {
				return false, nil
			}
			opened = true
			return true, nil
		}).AnyTimes()
	deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.metrics.EXPECT().ReconnectNotice("acme").Times(1)

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = g.Acquire(ctx, p)
		}()
	}
	wg.Wait()
}

func TestGuard_ReportPermanent(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the episode for a connected business", func(t *testing.T) {
		g, deps := newGuard(t, 1)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), "acme", fixedNow).Return(true, nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		deps.metrics.EXPECT().ReconnectNotice("acme")

		g.ReportPermanent(ctx, p)
	})

	t.Run("ignored while an episode is open", func(t *testing.T) {
		g, deps := newGuard(t, 1)
		p := builder.NewBusinessBuilder().
			WithRefreshToken("refresh-1").
			WithReconnectNotifiedAt(fixedNow).
			BuildDomain()

		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		g.ReportPermanent(ctx, p)
	})

	t.Run("notification failure does not count a notice", func(t *testing.T) {
		g, deps := newGuard(t, 1)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		deps.harness.Businesses.EXPECT().OpenDisconnection(gomock.Any(), gomock.Any(), "acme", fixedNow).Return(true, nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		deps.metrics.EXPECT().ReconnectNotice(gomock.Any()).Times(0)

		g.ReportPermanent(ctx, p)
	})
}
