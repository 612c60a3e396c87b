//go:build unit || e2e

package uowtest

import (
	"context"
	"log/slog"

	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/usecase/shared"
	sharedmock "agenda-engine/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

// Harness wires a mocked unit of work whose transactions hand out the mocked repositories.
type Harness struct {
	UoW          *sharedmock.MockUnitOfWork
	Tx           *sharedmock.MockTx
	Appointments *sharedmock.MockAppointmentRepository
	Businesses   *sharedmock.MockBusinessRepository
}

func NewHarness(ctrl *gomock.Controller) *Harness {
	h := &Harness{
		UoW:          sharedmock.NewMockUnitOfWork(ctrl),
		Tx:           sharedmock.NewMockTx(ctrl),
		Appointments: sharedmock.NewMockAppointmentRepository(ctrl),
		Businesses:   sharedmock.NewMockBusinessRepository(ctrl),
	}

	h.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.Tx)
		}).AnyTimes()
	h.UoW.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	h.Tx.EXPECT().Appointments().Return(h.Appointments).AnyTimes()
	h.Tx.EXPECT().Businesses().Return(h.Businesses).AnyTimes()
	h.Tx.EXPECT().DB().Return(nil).AnyTimes()
	return h
}

// Stuck returns a unit of work whose transactions never start and only return once ctx is done.
func Stuck(ctrl *gomock.Controller) *sharedmock.MockUnitOfWork {
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ func(context.Context, shared.Tx) error) error {
			<-ctx.Done()
			return ctx.Err()
		}).AnyTimes()
	return uow
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
