//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/shared"
	"agenda-engine/tests/common/builder"
	"agenda-engine/tests/common/uowtest"
	credentialmock "agenda-engine/tests/mock/credential"
	queriesmock "agenda-engine/tests/mock/queries"
	sharedmock "agenda-engine/tests/mock/shared"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cancelDeps struct {
	harness   *uowtest.Harness
	config    *queriesmock.MockConfigQueries
	access    *credentialmock.MockAccessProvider
	provider  *sharedmock.MockCalendarProvider
	notifier  *sharedmock.MockNotifier
	publisher *sharedmock.MockEventPublisher
}

func newCancellation(t *testing.T) (commands.CancellationCommands, *cancelDeps) {
	ctrl := gomock.NewController(t)
	deps := &cancelDeps{
		harness:   uowtest.NewHarness(ctrl),
		config:    queriesmock.NewMockConfigQueries(ctrl),
		access:    credentialmock.NewMockAccessProvider(ctrl),
		provider:  sharedmock.NewMockCalendarProvider(ctrl),
		notifier:  sharedmock.NewMockNotifier(ctrl),
		publisher: sharedmock.NewMockEventPublisher(ctrl),
	}
	uc := commands.NewCancellationCommands(
		deps.config,
		deps.access,
		deps.provider,
		deps.harness.UoW,
		deps.notifier,
		deps.publisher,
		clock.NewMockClock(sundayNoon),
		uowtest.DiscardLogger(),
		shared.DefaultTimeouts(),
	)
	return uc, deps
}

func bookedAppointment(t *testing.T, eventID *string) (*appointment.Appointment, appointment.CancelToken) {
	t.Helper()
	p := builder.NewBusinessBuilder().BuildDomain()
	client, err := appointment.NewClientInfo("Ana Pérez", "ana@example.test", "")
	require.NoError(t, err)

	f := appointment.NewFactory(clock.NewMockClock(sundayNoon))
	f.Random = bytes.NewReader(bytes.Repeat([]byte{0xab}, 32))
	a, token, err := f.CreateAppointment("acme", client, civil.Date{Year: 2025, Month: time.March, Day: 10}, mondayAt(p, 10, 0), eventID)
	require.NoError(t, err)
	return a, token
}

func TestCancellationCommands_CancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cancels and removes the mirrored event", func(t *testing.T) {
		uc, deps := newCancellation(t)
		eventID := "evt-1"
		appt, token := bookedAppointment(t, &eventID)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()
		access := shared.Access{Token: "access-1"}

		deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), token.Digest(), sundayNoon).Return(appt, nil)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.access.EXPECT().Acquire(gomock.Any(), p).Return(access, nil)
		deps.provider.EXPECT().DeleteEvent(gomock.Any(), access, "evt-1").Return(nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, notification.KindOwnerCancellation, msg.Kind)
				assert.Equal(t, "owner@acme.test", msg.To)
				assert.Equal(t, "2025-03-10", msg.Data.Date)
				assert.Equal(t, "10:00", msg.Data.Time)
				return nil
			})
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt shared.BookingEvent) error {
				assert.Equal(t, shared.BookingCancelled, evt.Type)
				assert.Equal(t, appt.ID(), evt.AppointmentID)
				return nil
			})

		require.NoError(t, uc.CancelBooking(ctx, token.String()))
	})

	t.Run("success: provider failures do not undo the cancellation", func(t *testing.T) {
		uc, deps := newCancellation(t)
		eventID := "evt-2"
		appt, token := bookedAppointment(t, &eventID)
		p := builder.NewBusinessBuilder().WithRefreshToken("refresh-1").BuildDomain()

		deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(appt, nil)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.access.EXPECT().Acquire(gomock.Any(), p).Return(shared.Access{}, errs.Mark(errors.New("503"), shared.ErrProviderTransient))
		deps.provider.EXPECT().DeleteEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		require.NoError(t, uc.CancelBooking(ctx, token.String()))
	})

	t.Run("success: unmirrored booking never touches the provider", func(t *testing.T) {
		uc, deps := newCancellation(t)
		appt, token := bookedAppointment(t, nil)
		p := builder.NewBusinessBuilder().BuildDomain()

		deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(appt, nil)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.access.EXPECT().Acquire(gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, uc.CancelBooking(ctx, token.String()))
	})

	t.Run("error: second cancellation with the same token", func(t *testing.T) {
		uc, deps := newCancellation(t)
		appt, token := bookedAppointment(t, nil)
		p := builder.NewBusinessBuilder().BuildDomain()

		gomock.InOrder(
			deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), token.Digest(), gomock.Any()).Return(appt, nil),
			deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), token.Digest(), gomock.Any()).
				Return(nil, infra.NewRepositoryError(infra.KindNotFound, "no active appointment", nil)),
		)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
		deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, uc.CancelBooking(ctx, token.String()))
		err := uc.CancelBooking(ctx, token.String())
		assert.ErrorIs(t, err, commands.ErrCancelTokenNotFound)
	})

	t.Run("error: malformed token is indistinguishable from unknown", func(t *testing.T) {
		uc, deps := newCancellation(t)
		deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		for _, raw := range []string{"", "not-a-token", "zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
			assert.ErrorIs(t, uc.CancelBooking(ctx, raw), commands.ErrCancelTokenNotFound, raw)
		}
	})

	t.Run("error: storage failure", func(t *testing.T) {
		uc, deps := newCancellation(t)
		_, token := bookedAppointment(t, nil)
		deps.harness.Appointments.EXPECT().CancelByTokenDigest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.NewRepositoryError(infra.KindDBFailure, "cancel appointment", errors.New("conn reset")))

		err := uc.CancelBooking(ctx, token.String())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCancellationFailed))
	})

	t.Run("error: stuck storage gives up at the storage timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := sharedmock.NewMockNotifier(ctrl)
		uc := commands.NewCancellationCommands(
			queriesmock.NewMockConfigQueries(ctrl),
			credentialmock.NewMockAccessProvider(ctrl),
			sharedmock.NewMockCalendarProvider(ctrl),
			uowtest.Stuck(ctrl),
			notifier,
			sharedmock.NewMockEventPublisher(ctrl),
			clock.NewMockClock(sundayNoon),
			uowtest.DiscardLogger(),
			shared.Timeouts{Provider: time.Second, Storage: 50 * time.Millisecond, Notify: time.Second},
		)
		_, token := bookedAppointment(t, nil)
		notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

		start := time.Now()
		err := uc.CancelBooking(context.Background(), token.String())
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCancellationFailed))
		assert.Less(t, time.Since(start), time.Second)
	})
}
