//go:build unit

package localtime_test

import (
	"testing"
	"time"

	"agenda-engine/internal/pkg/localtime"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    civil.Date
		wantErr bool
	}{
		{name: "valid date", input: "2025-03-10", want: civil.Date{Year: 2025, Month: time.March, Day: 10}},
		{name: "surrounding spaces", input: " 2025-03-10 ", want: civil.Date{Year: 2025, Month: time.March, Day: 10}},
		{name: "single digit month", input: "2025-3-10", wantErr: true},
		{name: "impossible day", input: "2025-02-30", wantErr: true},
		{name: "slashes", input: "2025/03/10", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localtime.ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, localtime.ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    civil.Time
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: civil.Time{Hour: 9, Minute: 30}},
		{name: "last minute", input: "23:59", want: civil.Time{Hour: 23, Minute: 59}},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "seconds", input: "09:30:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := localtime.ParseTime(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, localtime.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, localtime.FormatTime(got))
		})
	}
}

func TestSanitizeZone(t *testing.T) {
	assert.Equal(t, "America/Santo_Domingo", localtime.SanitizeZone("'America/Santo_Domingo'"))
	assert.Equal(t, "America/New_York", localtime.SanitizeZone(` "America/New_York" `))
	assert.Equal(t, "Europe/Madrid", localtime.SanitizeZone("`Europe/Madrid`;"))

	loc, err := localtime.LoadZone("'America/Santo_Domingo'")
	require.NoError(t, err)
	assert.Equal(t, "America/Santo_Domingo", loc.String())

	_, err = localtime.LoadZone("Mars/Olympus")
	assert.ErrorIs(t, err, localtime.ErrInvalidZone)

	_, err = localtime.LoadZone("''")
	assert.ErrorIs(t, err, localtime.ErrInvalidZone)
}

func TestDayBoundsUseBusinessZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	require.NoError(t, err)

	start, end := localtime.DayBounds(civil.Date{Year: 2025, Month: time.March, Day: 10}, loc)

	assert.Equal(t, time.Date(2025, time.March, 10, 4, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, time.Date(2025, time.March, 11, 4, 0, 0, 0, time.UTC), end.UTC())
}

func TestTodayNearMidnightUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	require.NoError(t, err)

	// 02:30 UTC on the 11th is still the 10th at UTC-4.
	now := time.Date(2025, time.March, 11, 2, 30, 0, 0, time.UTC)

	assert.Equal(t, civil.Date{Year: 2025, Month: time.March, Day: 10}, localtime.Today(now, loc))
	assert.Equal(t, "2025-03", localtime.MonthKey(now, loc))
}

func TestMonthBounds(t *testing.T) {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	require.NoError(t, err)

	now := time.Date(2025, time.April, 1, 3, 0, 0, 0, time.UTC)
	start, end := localtime.MonthBounds(now, loc)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, loc), end)
}

func TestAtMinuteAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09 is the spring-forward day in New York.
	d := civil.Date{Year: 2025, Month: time.March, Day: 9}
	got := localtime.AtMinute(d, 9*60, loc)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, time.Date(2025, time.March, 9, 13, 0, 0, 0, time.UTC), got.UTC())
}
