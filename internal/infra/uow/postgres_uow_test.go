//go:build unit

package uow

import (
	"errors"
	"testing"
	"time"

	"agenda-engine/internal/infra"
	"agenda-engine/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: serialization, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, want: true},
		{name: "wrapped by repository", err: infra.NewRepositoryError(infra.KindDBFailure, "insert", serialization), want: true},
		{name: "marked on commit", err: errs.Mark(serialization, errTransactionCommit), want: true},
		{name: "capacity trigger", err: &pgconn.PgError{Code: "23514", ConstraintName: infra.ConstraintMaxPerDay}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry_StopsAtMax(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	assert.True(t, shouldRetry(err, 0, 3))
	assert.True(t, shouldRetry(err, 2, 3))
	assert.False(t, shouldRetry(err, 3, 3))
}

func TestCalculateBackoff_GrowsWithJitterBound(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		wait := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, wait, floor)
		assert.Less(t, wait, floor+floor/5+time.Nanosecond)
	}
}
