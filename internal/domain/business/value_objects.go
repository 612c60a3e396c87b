package business

import (
	"errors"

	"agenda-engine/internal/pkg/localtime"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidWorkingHours = errors.New("day start must be before day end")
	ErrInvalidLunch        = errors.New("lunch must lie inside working hours")
)

// DaySchedule is one weekday's working window. Lunch is optional and excluded from booking.
type DaySchedule struct {
	enabled    bool
	start      civil.Time
	end        civil.Time
	lunchStart *civil.Time
	lunchEnd   *civil.Time
}

func DisabledDay() DaySchedule {
	return DaySchedule{}
}

func NewDaySchedule(start, end civil.Time, lunchStart, lunchEnd *civil.Time) (DaySchedule, error) {
	startMin, endMin := localtime.MinuteOfDay(start), localtime.MinuteOfDay(end)
	if startMin >= endMin {
		return DaySchedule{}, ErrInvalidWorkingHours
	}

	if lunchStart == nil || lunchEnd == nil {
		return DaySchedule{enabled: true, start: start, end: end}, nil
	}

	ls, le := localtime.MinuteOfDay(*lunchStart), localtime.MinuteOfDay(*lunchEnd)
	if ls >= le || ls < startMin || le > endMin {
		return DaySchedule{}, ErrInvalidLunch
	}

	return DaySchedule{
		enabled:    true,
		start:      start,
		end:        end,
		lunchStart: lunchStart,
		lunchEnd:   lunchEnd,
	}, nil
}

func (d DaySchedule) Enabled() bool     { return d.enabled }
func (d DaySchedule) Start() civil.Time { return d.start }
func (d DaySchedule) End() civil.Time   { return d.end }

func (d DaySchedule) Lunch() (civil.Time, civil.Time, bool) {
	if d.lunchStart == nil || d.lunchEnd == nil {
		return civil.Time{}, civil.Time{}, false
	}
	return *d.lunchStart, *d.lunchEnd, true
}

// StartMinute and EndMinute are wall-clock minutes after midnight.
func (d DaySchedule) StartMinute() int { return localtime.MinuteOfDay(d.start) }
func (d DaySchedule) EndMinute() int   { return localtime.MinuteOfDay(d.end) }
