package repository

import (
	"context"
	"log/slog"
	"time"

	"agenda-engine/internal/infra"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"
)

type BusinessWriteQueries interface {
	OpenDisconnection(ctx context.Context, db sqlc.DBTX, arg sqlc.OpenDisconnectionParams) (int64, error)
	StoreCredential(ctx context.Context, db sqlc.DBTX, arg sqlc.StoreCredentialParams) (int64, error)
	MarkNearLimitNotified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNearLimitNotifiedParams) (int64, error)
}

type BusinessRepository struct {
	queries BusinessWriteQueries
	logger  *slog.Logger
}

func NewBusinessRepository(queries BusinessWriteQueries, logger *slog.Logger) *BusinessRepository {
	return &BusinessRepository{
		queries: queries,
		logger:  logger,
	}
}

// OpenDisconnection sets the reconnect marker only while it is NULL.
func (r *BusinessRepository) OpenDisconnection(ctx context.Context, tx sqlc.DBTX, slug string, at time.Time) (bool, error) {
	n, err := r.queries.OpenDisconnection(ctx, tx, sqlc.OpenDisconnectionParams{
		Slug:                slug,
		ReconnectNotifiedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to open disconnection episode", err)
	}
	return n == 1, nil
}

// StoreCredential also closes any open disconnection episode.
func (r *BusinessRepository) StoreCredential(ctx context.Context, tx sqlc.DBTX, slug, refreshToken, calendarEmail string) error {
	n, err := r.queries.StoreCredential(ctx, tx, sqlc.StoreCredentialParams{
		Slug:          slug,
		RefreshToken:  pgconv.StringToPgtype(refreshToken),
		CalendarEmail: pgconv.OptionalStringToPgtype(calendarEmail),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to store calendar credential", err)
	}
	if n == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "business not found", nil)
	}
	return nil
}

func (r *BusinessRepository) MarkNearLimitNotified(ctx context.Context, tx sqlc.DBTX, slug, monthKey string) (bool, error) {
	n, err := r.queries.MarkNearLimitNotified(ctx, tx, sqlc.MarkNearLimitNotifiedParams{
		Slug:  slug,
		Month: pgconv.StringToPgtype(monthKey),
	})
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to mark near-limit notice", err)
	}
	return n == 1, nil
}
