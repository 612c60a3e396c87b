//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type BusinessFixture struct {
	Slug         string
	Name         string
	Timezone     string
	WorkDays     []int
	DefaultDay   string // JSON
	PerDay       string // JSON
	MaxPerDay    *int
	MaxPerHour   *int
	Plan         string
	RefreshToken *string
	OwnerEmail   string
	Active       bool
	ValidUntil   *time.Time
}

// DefaultBusiness is open Monday to Friday, 09:00 to 17:00 in Santo Domingo.
func DefaultBusiness(slug string) BusinessFixture {
	return BusinessFixture{
		Slug:       slug,
		Name:       "Barbería " + slug,
		Timezone:   "America/Santo_Domingo",
		WorkDays:   []int{1, 2, 3, 4, 5},
		DefaultDay: `{"start":"09:00","end":"17:00"}`,
		PerDay:     `{}`,
		Plan:       "free",
		OwnerEmail: "owner@" + slug + ".test",
		Active:     true,
	}
}

func CreateBusiness(t *testing.T, db DBLike, f BusinessFixture) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO businesses (slug, name, timezone, work_days, default_day, per_day_config,
		                        max_per_day, max_per_hour, plan, refresh_token, owner_email, active,
		                        subscription_valid_until)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, $7, $8, $9, $10, $11, $12, $13)`,
		f.Slug, f.Name, f.Timezone, f.WorkDays, f.DefaultDay, f.PerDay,
		f.MaxPerDay, f.MaxPerHour, f.Plan, f.RefreshToken, f.OwnerEmail, f.Active, f.ValidUntil)
	require.NoError(t, err)
}

func CountActiveAppointments(t *testing.T, db DBLike, slug string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM appointments WHERE business_slug = $1 AND cancelled = false", slug).Scan(&n)
	require.NoError(t, err)
	return n
}

func ReconnectNotified(t *testing.T, db DBLike, slug string) bool {
	t.Helper()

	var notified bool
	err := db.QueryRow(context.Background(),
		"SELECT reconnect_notified_at IS NOT NULL FROM businesses WHERE slug = $1", slug).Scan(&notified)
	require.NoError(t, err)
	return notified
}

// SeedReferenceData inserts the demo business every suite can rely on.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (slug, name, timezone, default_day, owner_email)
		VALUES ('demo', 'Demo', 'America/Santo_Domingo', '{"start":"09:00","end":"17:00"}'::jsonb, 'owner@demo.test')
		ON CONFLICT (slug) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
