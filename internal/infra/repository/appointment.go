package repository

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/infra/repository/converter"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	CancelAppointmentByTokenDigest(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelAppointmentByTokenDigestParams) (sqlc.Appointments, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	logger  *slog.Logger
}

func NewAppointmentRepository(queries AppointmentWriteQueries, logger *slog.Logger) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		logger:  logger,
	}
}

// Create relies on the capacity trigger; a rejected insert surfaces as infra.KindCapacityExceeded.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapPgErr(r.logger, "failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) CancelByTokenDigest(ctx context.Context, tx sqlc.DBTX, digest []byte, at time.Time) (*appointment.Appointment, error) {
	row, err := r.queries.CancelAppointmentByTokenDigest(ctx, tx, sqlc.CancelAppointmentByTokenDigestParams{
		CancelTokenDigest: digest,
		CancelledAt:       pgconv.TimeToPgtype(at),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError(infra.KindNotFound, "no active appointment for token", nil)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to cancel appointment", err)
	}
	return converter.AppointmentFromRow(row), nil
}
