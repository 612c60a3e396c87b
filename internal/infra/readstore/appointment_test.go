//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"agenda-engine/internal/infra"
	"agenda-engine/internal/infra/readstore"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/tests/common/builder"
	readstoremock "agenda-engine/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
	discard             = slog.New(slog.DiscardHandler)
)

func newAppointmentStore(t *testing.T) (*readstore.AppointmentReadStore, *readstoremock.MockAppointmentViewQueries) {
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockAppointmentViewQueries(ctrl)
	return readstore.NewAppointmentReadStore(mockQueries, nil, discard), mockQueries
}

// =============================================================================
// ActiveWindowsBetween Tests
// =============================================================================

func TestReadStore_ActiveWindowsBetween(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	t.Run("success: rows become windows", func(t *testing.T) {
		store, mockQueries := newAppointmentStore(t)
		first := from.Add(9 * time.Hour)
		mockQueries.EXPECT().ListActiveWindows(ctx, gomock.Any(), sqlc.ListActiveWindowsParams{
			BusinessSlug: "acme",
			RangeStart:   pgtype.Timestamptz{Time: from, Valid: true},
			RangeEnd:     pgtype.Timestamptz{Time: to, Valid: true},
		}).Return([]sqlc.ListActiveWindowsRow{
			{StartAt: pgtype.Timestamptz{Time: first, Valid: true}, EndAt: pgtype.Timestamptz{Time: first.Add(30 * time.Minute), Valid: true}},
			{StartAt: pgtype.Timestamptz{Time: first.Add(time.Hour), Valid: true}, EndAt: pgtype.Timestamptz{Time: first.Add(90 * time.Minute), Valid: true}},
		}, nil)

		windows, err := store.ActiveWindowsBetween(ctx, "acme", from, to)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.True(t, windows[0].Start.Equal(first))
		assert.Equal(t, 30*time.Minute, windows[1].Duration())
	})

	t.Run("success: empty day", func(t *testing.T) {
		store, mockQueries := newAppointmentStore(t)
		mockQueries.EXPECT().ListActiveWindows(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

		windows, err := store.ActiveWindowsBetween(ctx, "acme", from, to)
		require.NoError(t, err)
		assert.Empty(t, windows)
	})

	t.Run("error: database failure", func(t *testing.T) {
		store, mockQueries := newAppointmentStore(t)
		mockQueries.EXPECT().ListActiveWindows(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := store.ActiveWindowsBetween(ctx, "acme", from, to)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// CountActiveBetween Tests
// =============================================================================

func TestReadStore_CountActiveBetween(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2025, 3, 1, 4, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 4, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		count         int64
		returnErr     error
		expectedCount int
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: counted", count: 9, expectedCount: 9},
		{name: "error: database failure", returnErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mockQueries := newAppointmentStore(t)
			mockQueries.EXPECT().CountActiveAppointments(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CountActiveAppointmentsParams) (int64, error) {
					assert.Equal(t, "acme", arg.BusinessSlug)
					assert.True(t, arg.RangeStart.Time.Equal(from))
					assert.True(t, arg.RangeEnd.Time.Equal(to))
					return tc.count, tc.returnErr
				})

			n, err := store.CountActiveBetween(ctx, "acme", from, to)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedCount, n)
		})
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	cancelledAt := time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockAppointmentViewQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: appointment found",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries, id uuid.UUID) {
				row := builder.NewAppointmentBuilder().WithPhone("+1 809 555 0101").AsCancelled(cancelledAt).BuildInfra()
				row.ID = id
				mock.EXPECT().GetAppointmentForBusiness(ctx, gomock.Any(), sqlc.GetAppointmentForBusinessParams{ID: id, BusinessSlug: "acme"}).Return(row, nil)
			},
		},
		{
			name: "error: appointment not found",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries, id uuid.UUID) {
				mock.EXPECT().GetAppointmentForBusiness(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointments{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockAppointmentViewQueries, id uuid.UUID) {
				mock.EXPECT().GetAppointmentForBusiness(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointments{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, mockQueries := newAppointmentStore(t)
			id := uuid.New()
			tc.setupMock(mockQueries, id)

			view, err := store.FindByID(ctx, "acme", id)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, view.ID)
			assert.Equal(t, "2025-03-10", view.Date)
			assert.True(t, view.Cancelled)
			require.NotNil(t, view.CancelledAt)
			assert.True(t, cancelledAt.Equal(*view.CancelledAt))
			require.NotNil(t, view.ClientPhone)
			assert.Equal(t, "+1 809 555 0101", *view.ClientPhone)
			assert.False(t, view.Mirrored)
		})
	}
}
