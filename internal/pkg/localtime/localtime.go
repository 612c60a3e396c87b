// Package localtime converts between business-local civil time and absolute instants.
//
// Every date or wall-clock value that belongs to a business is interpreted in that
// business's zone. Nothing in this package reads the process-local zone.
package localtime

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	MonthKeyLayout = "2006-01"
)

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be formatted as HH:mm")
	ErrInvalidZone = errors.New("unknown time zone")
)

// ParseDate accepts only YYYY-MM-DD.
func ParseDate(s string) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(DateLayout) {
		return civil.Date{}, ErrInvalidDate
	}
	d, err := civil.ParseDate(s)
	if err != nil || !d.IsValid() {
		return civil.Date{}, ErrInvalidDate
	}
	return d, nil
}

// ParseTime accepts only HH:mm on a 24h clock.
func ParseTime(s string) (civil.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) != len(TimeLayout) || s[2] != ':' {
		return civil.Time{}, ErrInvalidTime
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return civil.Time{}, ErrInvalidTime
	}
	return civil.Time{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// FormatTime renders HH:mm.
func FormatTime(t civil.Time) string {
	return time.Date(2000, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(TimeLayout)
}

// SanitizeZone strips quoting and formatting noise that stored zone names arrive with.
func SanitizeZone(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '`', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, raw)
	return strings.Trim(cleaned, ",;")
}

// LoadZone sanitizes raw and loads it.
func LoadZone(raw string) (*time.Location, error) {
	name := SanitizeZone(raw)
	if name == "" {
		return nil, ErrInvalidZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidZone
	}
	return loc, nil
}

// At returns the instant of wall clock t on date d in loc.
func At(d civil.Date, t civil.Time, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

// AtMinute returns the instant that is minute minutes after local midnight of d,
// counted on the wall clock.
func AtMinute(d civil.Date, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, minute, 0, 0, loc)
}

// DayBounds returns [local midnight of d, local midnight of the next day).
func DayBounds(d civil.Date, loc *time.Location) (time.Time, time.Time) {
	next := d.AddDays(1)
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc),
		time.Date(next.Year, next.Month, next.Day, 0, 0, 0, 0, loc)
}

// MonthBounds returns the local calendar month containing now.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Today is the civil date of now in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(now.In(loc))
}

// DateOf is the civil date of instant t in loc.
func DateOf(t time.Time, loc *time.Location) civil.Date {
	return civil.DateOf(t.In(loc))
}

// MonthKey formats the local month of now as YYYY-MM.
func MonthKey(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(MonthKeyLayout)
}

// MinuteOfDay converts a wall clock to minutes after midnight.
func MinuteOfDay(t civil.Time) int {
	return t.Hour*60 + t.Minute
}
