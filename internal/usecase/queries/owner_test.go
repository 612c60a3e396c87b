//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/queries"
	"agenda-engine/tests/common/builder"
	queriesmock "agenda-engine/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ownerDeps struct {
	config *queriesmock.MockConfigQueries
	store  *queriesmock.MockAppointmentReadStore
	limits *queriesmock.MockPlanLimits
}

func newOwnerQueries(t *testing.T, now time.Time) (queries.OwnerQueries, *ownerDeps) {
	ctrl := gomock.NewController(t)
	deps := &ownerDeps{
		config: queriesmock.NewMockConfigQueries(ctrl),
		store:  queriesmock.NewMockAppointmentReadStore(ctrl),
		limits: queriesmock.NewMockPlanLimits(ctrl),
	}
	return queries.NewOwnerQueries(deps.config, deps.store, deps.limits, clock.NewMockClock(now)), deps
}

func TestOwnerQueries_Usage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("limited plan reports its cap", func(t *testing.T) {
		q, deps := newOwnerQueries(t, now)
		p := builder.NewBusinessBuilder().BuildDomain()
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.store.EXPECT().CountActiveBetween(gomock.Any(), "acme", gomock.Any(), gomock.Any()).Return(7, nil)
		deps.limits.EXPECT().MonthlyLimit(business.PlanFree).Return(10, true)

		view, err := q.Usage(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, "2025-03", view.Month)
		assert.Equal(t, 7, view.Count)
		require.NotNil(t, view.Limit)
		assert.Equal(t, 10, *view.Limit)
	})

	t.Run("unlimited plan has no cap", func(t *testing.T) {
		q, deps := newOwnerQueries(t, now)
		p := builder.NewBusinessBuilder().WithPlan("premium").BuildDomain()
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.store.EXPECT().CountActiveBetween(gomock.Any(), "acme", gomock.Any(), gomock.Any()).Return(120, nil)
		deps.limits.EXPECT().MonthlyLimit(business.PlanPremium).Return(0, false)

		view, err := q.Usage(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, "premium", view.Plan)
		assert.Nil(t, view.Limit)
	})
}

func TestOwnerQueries_ListAppointments(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	p := builder.NewBusinessBuilder().BuildDomain()
	loc := p.Location()

	rows := func(n int) []*queries.AppointmentView {
		out := make([]*queries.AppointmentView, n)
		for i := range out {
			start := time.Date(2025, 3, 10, 9+i, 0, 0, 0, loc)
			out[i] = &queries.AppointmentView{ID: uuid.New(), StartAt: start, EndAt: start.Add(30 * time.Minute)}
		}
		return out
	}

	t.Run("first page returns a cursor when more rows exist", func(t *testing.T) {
		q, deps := newOwnerQueries(t, now)
		page := rows(3)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.store.EXPECT().ListForOwner(gomock.Any(), "acme", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
				assert.Equal(t, 3, f.Limit)
				require.NotNil(t, f.From)
				require.NotNil(t, f.To)
				assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, loc), *f.From)
				assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, loc), *f.To)
				assert.Nil(t, f.AfterID)
				return page, nil
			})

		got, next, err := q.ListAppointments(ctx, "acme", queries.AppointmentListRequest{From: "2025-03-10", To: "2025-03-11"}, nil, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)

		start, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.True(t, page[1].StartAt.Equal(start))
		assert.Equal(t, page[1].ID, id)
	})

	t.Run("cursor is forwarded as keyset", func(t *testing.T) {
		q, deps := newOwnerQueries(t, now)
		lastID := uuid.New()
		lastStart := time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC)
		deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)
		deps.store.EXPECT().ListForOwner(gomock.Any(), "acme", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
				require.NotNil(t, f.AfterID)
				assert.Equal(t, lastID, *f.AfterID)
				assert.True(t, lastStart.Equal(*f.AfterStart))
				assert.Equal(t, queries.DefaultListLimit+1, f.Limit)
				return rows(1), nil
			})

		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastStart, lastID)}
		got, next, err := q.ListAppointments(ctx, "acme", queries.AppointmentListRequest{}, cursor, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("error cases", func(t *testing.T) {
		tests := []struct {
			name    string
			req     queries.AppointmentListRequest
			cursor  *queries.Cursor
			wantErr error
		}{
			{name: "garbage cursor", cursor: &queries.Cursor{After: "!!!"}, wantErr: queries.ErrInvalidCursor},
			{name: "bad from date", req: queries.AppointmentListRequest{From: "march"}, wantErr: queries.ErrInvalidRange},
			{name: "to before from", req: queries.AppointmentListRequest{From: "2025-03-12", To: "2025-03-10"}, wantErr: queries.ErrInvalidRange},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				q, deps := newOwnerQueries(t, now)
				deps.config.EXPECT().Resolve(gomock.Any(), "acme").Return(p, nil)

				_, _, err := q.ListAppointments(ctx, "acme", tt.req, tt.cursor, 10)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
			})
		}
	})
}

func TestOwnerQueries_GetAppointment(t *testing.T) {
	q, deps := newOwnerQueries(t, time.Now())
	id := uuid.New()
	deps.store.EXPECT().FindByID(gomock.Any(), "acme", id).Return(nil, infra.NewRepositoryError(infra.KindNotFound, "appointment not found", nil))

	_, err := q.GetAppointment(context.Background(), "acme", id)
	assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
}
