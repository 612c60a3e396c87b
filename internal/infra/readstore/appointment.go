package readstore

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/infra"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"
	"agenda-engine/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	ListActiveWindows(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveWindowsParams) ([]sqlc.ListActiveWindowsRow, error)
	CountActiveAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveAppointmentsParams) (int64, error)
	GetAppointmentForBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.GetAppointmentForBusinessParams) (sqlc.Appointments, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX, logger *slog.Logger) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

// ActiveWindowsBetween returns the non-cancelled windows intersecting [from, to).
func (r *AppointmentReadStore) ActiveWindowsBetween(ctx context.Context, slug string, from, to time.Time) ([]slot.Window, error) {
	rows, err := r.queries.ListActiveWindows(ctx, r.db, sqlc.ListActiveWindowsParams{
		BusinessSlug: slug,
		RangeStart:   pgconv.TimeToPgtype(from),
		RangeEnd:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list active windows", err)
	}

	windows := make([]slot.Window, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, slot.Window{Start: row.StartAt.Time, End: row.EndAt.Time})
	}
	return windows, nil
}

// CountActiveBetween counts non-cancelled appointments starting in [from, to).
func (r *AppointmentReadStore) CountActiveBetween(ctx context.Context, slug string, from, to time.Time) (int, error) {
	n, err := r.queries.CountActiveAppointments(ctx, r.db, sqlc.CountActiveAppointmentsParams{
		BusinessSlug: slug,
		RangeStart:   pgconv.TimeToPgtype(from),
		RangeEnd:     pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to count active appointments", err)
	}
	return int(n), nil
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, slug string, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentForBusiness(ctx, r.db, sqlc.GetAppointmentForBusinessParams{
		ID:           id,
		BusinessSlug: slug,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError(infra.KindNotFound, "appointment not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get appointment", err)
	}
	return toAppointmentView(row), nil
}

// ListForOwner pages by (start_at, id) keyset.
func (r *AppointmentReadStore) ListForOwner(ctx context.Context, slug string, filter queries.AppointmentFilter) ([]*queries.AppointmentView, error) {
	query, args, err := ownerListQuery(slug, filter)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to build owner listing query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list appointments", err)
	}
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		var i sqlc.Appointments
		if err := rows.Scan(
			&i.ID,
			&i.BusinessSlug,
			&i.ClientName,
			&i.ClientEmail,
			&i.ClientPhone,
			&i.LocalDate,
			&i.StartAt,
			&i.EndAt,
			&i.ExternalEventID,
			&i.CancelTokenDigest,
			&i.Cancelled,
			&i.CancelledAt,
			&i.Mirrored,
			&i.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan appointment", err)
		}
		views = append(views, toAppointmentView(i))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate appointments", err)
	}
	return views, nil
}

var appointmentColumns = []string{
	"id", "business_slug", "client_name", "client_email", "client_phone",
	"local_date", "start_at", "end_at", "external_event_id", "cancel_token_digest",
	"cancelled", "cancelled_at", "mirrored", "created_at",
}

func ownerListQuery(slug string, filter queries.AppointmentFilter) (string, []any, error) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(appointmentColumns...).
		From("appointments").
		Where(sq.Eq{"business_slug": slug})

	if !filter.IncludeCancelled {
		b = b.Where(sq.Eq{"cancelled": false})
	}
	if filter.From != nil {
		b = b.Where(sq.GtOrEq{"start_at": *filter.From})
	}
	if filter.To != nil {
		b = b.Where(sq.Lt{"start_at": *filter.To})
	}
	if filter.AfterStart != nil && filter.AfterID != nil {
		b = b.Where(sq.Expr("(start_at, id) > (?, ?)", *filter.AfterStart, *filter.AfterID))
	}

	b = b.OrderBy("start_at ASC", "id ASC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	return b.ToSql()
}

func toAppointmentView(row sqlc.Appointments) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:          row.ID,
		ClientName:  row.ClientName,
		ClientEmail: row.ClientEmail,
		ClientPhone: pgconv.StringPtrFromPgtype(row.ClientPhone),
		Date:        pgconv.DateFromPgtype(row.LocalDate).String(),
		StartAt:     pgconv.TimeFromPgtype(row.StartAt),
		EndAt:       pgconv.TimeFromPgtype(row.EndAt),
		Mirrored:    row.Mirrored,
		Cancelled:   row.Cancelled,
		CancelledAt: pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
