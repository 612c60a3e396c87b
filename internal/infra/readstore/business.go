package readstore

import (
	"context"
	"log/slog"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/infra"
	"agenda-engine/internal/infra/repository/converter"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"
)

type BusinessReadQueries interface {
	GetBusinessBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Businesses, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
	logger  *slog.Logger
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX, logger *slog.Logger) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BusinessReadStore) FindBySlug(ctx context.Context, slug string) (*business.RawConfig, error) {
	row, err := r.queries.GetBusinessBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepositoryError(infra.KindNotFound, "business not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to get business by slug", err)
	}

	raw, err := converter.BusinessRowToRaw(row)
	if err != nil {
		// the affected days fall back to defaults
		r.logger.Warn("malformed day configuration",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
	}
	return raw, nil
}
