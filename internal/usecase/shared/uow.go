package shared

import (
	"context"
	"time"

	"agenda-engine/internal/domain/appointment"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	Businesses() BusinessRepository
	DB() sqlc.DBTX
}

type AppointmentRepository interface {
	// Create maps the storage capacity guard to infra.KindCapacityExceeded.
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	// CancelByTokenDigest flips a live appointment to cancelled; infra.KindNotFound otherwise.
	CancelByTokenDigest(ctx context.Context, tx sqlc.DBTX, digest []byte, at time.Time) (*appointment.Appointment, error)
}

type BusinessRepository interface {
	// OpenDisconnection reports whether this call opened the episode.
	OpenDisconnection(ctx context.Context, tx sqlc.DBTX, slug string, at time.Time) (bool, error)
	StoreCredential(ctx context.Context, tx sqlc.DBTX, slug, refreshToken, calendarEmail string) error
	// MarkNearLimitNotified reports whether monthKey was newly recorded.
	MarkNearLimitNotified(ctx context.Context, tx sqlc.DBTX, slug, monthKey string) (bool, error)
}
