//go:build unit

package readstore

import (
	"testing"
	"time"

	"agenda-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerListQuery(t *testing.T) {
	from := time.Date(2025, 3, 10, 4, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	afterStart := from.Add(10 * time.Hour)
	afterID := uuid.New()

	tests := []struct {
		name        string
		filter      queries.AppointmentFilter
		wantWhere   []string
		wantMissing []string
		wantArgs    []any
		wantLimit   string
	}{
		{
			name:        "active only, no range",
			filter:      queries.AppointmentFilter{Limit: 21},
			wantWhere:   []string{"business_slug = $1", "cancelled = $2"},
			wantMissing: []string{"start_at >=", "(start_at, id) >"},
			wantArgs:    []any{"acme", false},
			wantLimit:   "LIMIT 21",
		},
		{
			name:        "range with cancelled rows",
			filter:      queries.AppointmentFilter{From: &from, To: &to, IncludeCancelled: true, Limit: 5},
			wantWhere:   []string{"business_slug = $1", "start_at >= $2", "start_at < $3"},
			wantMissing: []string{"cancelled ="},
			wantArgs:    []any{"acme", from, to},
			wantLimit:   "LIMIT 5",
		},
		{
			name:      "keyset continuation",
			filter:    queries.AppointmentFilter{AfterStart: &afterStart, AfterID: &afterID, Limit: 3},
			wantWhere: []string{"business_slug = $1", "cancelled = $2", "(start_at, id) > ($3, $4)"},
			wantArgs:  []any{"acme", false, afterStart, afterID},
			wantLimit: "LIMIT 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := ownerListQuery("acme", tt.filter)
			require.NoError(t, err)

			assert.Contains(t, sql, "FROM appointments")
			assert.Contains(t, sql, "ORDER BY start_at ASC, id ASC")
			assert.Contains(t, sql, tt.wantLimit)
			for _, w := range tt.wantWhere {
				assert.Contains(t, sql, w)
			}
			for _, m := range tt.wantMissing {
				assert.NotContains(t, sql, m)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
