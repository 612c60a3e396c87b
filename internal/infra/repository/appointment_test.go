//go:build unit

package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"agenda-engine/internal/infra"
	"agenda-engine/internal/infra/repository"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/tests/common/builder"
	repositorymock "agenda-engine/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.DiscardHandler)

// =============================================================================
// Create Appointment Tests
// =============================================================================

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		returnErr     error
		expectKind    infra.RepositoryErrorKind
		expectedCap   string
		expectedError bool
	}{
		{
			name: "success: appointment inserted",
		},
		{
			name:          "error: daily capacity trigger",
			returnErr:     &pgconn.PgError{Code: "23514", ConstraintName: infra.ConstraintMaxPerDay, Message: "daily capacity reached for acme"},
			expectKind:    infra.KindCapacityExceeded,
			expectedCap:   infra.ConstraintMaxPerDay,
			expectedError: true,
		},
		{
			name:          "error: window capacity trigger",
			returnErr:     &pgconn.PgError{Code: "23514", ConstraintName: infra.ConstraintMaxPerHour, Message: "window capacity reached for acme"},
			expectKind:    infra.KindCapacityExceeded,
			expectedCap:   infra.ConstraintMaxPerHour,
			expectedError: true,
		},
		{
			name:          "error: unrelated check constraint",
			returnErr:     &pgconn.PgError{Code: "23514", ConstraintName: "appointments_window_check"},
			expectKind:    infra.KindConflict,
			expectedCap:   "appointments_window_check",
			expectedError: true,
		},
		{
			name:          "error: token digest collision",
			returnErr:     &pgconn.PgError{Code: "23505", ConstraintName: "appointments_cancel_token_digest_key"},
			expectKind:    infra.KindDuplicateKey,
			expectedCap:   "appointments_cancel_token_digest_key",
			expectedError: true,
		},
		{
			name:          "error: unknown business",
			returnErr:     &pgconn.PgError{Code: "23503"},
			expectKind:    infra.KindForeignKeyViolated,
			expectedError: true,
		},
		{
			name:          "error: connection lost",
			returnErr:     errors.New("database connection error"),
			expectKind:    infra.KindDBFailure,
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries, discard)

			appt, _, err := builder.NewAppointmentBuilder().WithEventID("evt-1").BuildDomain()
			require.NoError(t, err)

			mockQueries.EXPECT().CreateAppointment(ctx, mockDB, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) error {
					assert.Equal(t, appt.ID(), arg.ID)
					assert.Equal(t, "acme", arg.BusinessSlug)
					assert.Equal(t, appt.TokenDigest(), arg.CancelTokenDigest)
					assert.True(t, arg.ExternalEventID.Valid)
					assert.True(t, arg.Mirrored)
					assert.False(t, arg.ClientPhone.Valid)
					assert.True(t, appt.Window().Start.Equal(arg.StartAt.Time))
					return tc.returnErr
				})

			actualError := repo.Create(ctx, mockDB, appt)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Equal(t, tc.expectedCap, infra.ViolatedConstraint(actualError))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// CancelByTokenDigest Tests
// =============================================================================

func TestAppointmentRepository_CancelByTokenDigest(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	t.Run("success: returns the cancelled appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAppointmentRepository(mockQueries, discard)

		row := builder.NewAppointmentBuilder().WithEventID("evt-9").AsCancelled(at).BuildInfra()
		mockQueries.EXPECT().CancelAppointmentByTokenDigest(ctx, mockDB, sqlc.CancelAppointmentByTokenDigestParams{
			CancelTokenDigest: row.CancelTokenDigest,
			CancelledAt:       row.CancelledAt,
		}).Return(row, nil)

		appt, err := repo.CancelByTokenDigest(ctx, mockDB, row.CancelTokenDigest, at)
		require.NoError(t, err)
		assert.Equal(t, row.ID, appt.ID())
		assert.True(t, appt.IsCancelled())
		require.NotNil(t, appt.ExternalEventID())
		assert.Equal(t, "evt-9", *appt.ExternalEventID())
		assert.Equal(t, "2025-03-10", appt.Date().String())
	})

	t.Run("error: token unknown or already used", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, discard)

		mockQueries.EXPECT().CancelAppointmentByTokenDigest(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointments{}, pgx.ErrNoRows)

		appt, err := repo.CancelByTokenDigest(ctx, &mockDBTX{}, []byte("digest"), at)
		require.Error(t, err)
		assert.Nil(t, appt)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
		repo := repository.NewAppointmentRepository(mockQueries, discard)

		mockQueries.EXPECT().CancelAppointmentByTokenDigest(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Appointments{}, errors.New("conn reset"))

		_, err := repo.CancelByTokenDigest(ctx, &mockDBTX{}, []byte("digest"), at)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Mock DBTX Implementation
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
