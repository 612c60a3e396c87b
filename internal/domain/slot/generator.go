// Package slot derives bookable windows from a business's working schedule.
package slot

import (
	"errors"
	"iter"
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/pkg/localtime"

	"cloud.google.com/go/civil"
)

var (
	ErrOutsideWorkingHours = errors.New("outside working hours")
	ErrInPast              = errors.New("slot in the past")
)

// Generate yields the candidate windows of date in business-local wall-clock order.
// Steps are taken on the wall clock, so a DST jump shifts instants but not labels.
// Windows overlapping lunch and windows starting before now are skipped.
func Generate(p *business.Profile, date civil.Date, d time.Duration, now time.Time) iter.Seq[Window] {
	return func(yield func(Window) bool) {
		step := int(d / time.Minute)
		if step <= 0 {
			return
		}
		day := p.ScheduleOn(date)
		if !day.Enabled() {
			return
		}

		lunchStart, lunchEnd, hasLunch := lunchMinutes(day)
		loc := p.Location()

		for m := day.StartMinute(); m+step <= day.EndMinute(); m += step {
			if hasLunch && m < lunchEnd && m+step > lunchStart {
				continue
			}
			w := Window{
				Start: localtime.AtMinute(date, m, loc),
				End:   localtime.AtMinute(date, m+step, loc),
			}
			if w.Start.Before(now) {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// Fits checks that w lies inside the working window of date, clear of lunch, and not in the past.
// It does not require w to sit on the generated grid.
func Fits(p *business.Profile, date civil.Date, w Window, now time.Time) error {
	day := p.ScheduleOn(date)
	if !day.Enabled() {
		return ErrOutsideWorkingHours
	}

	loc := p.Location()
	localStart, localEnd := w.Start.In(loc), w.End.In(loc)
	if civil.DateOf(localStart) != date {
		return ErrOutsideWorkingHours
	}

	startMin := localStart.Hour()*60 + localStart.Minute()
	endMin := startMin + int(w.Duration()/time.Minute)
	if civil.DateOf(localEnd) == date {
		endMin = localEnd.Hour()*60 + localEnd.Minute()
	}

	if startMin < day.StartMinute() || endMin > day.EndMinute() {
		return ErrOutsideWorkingHours
	}
	if ls, le, ok := lunchMinutes(day); ok && startMin < le && endMin > ls {
		return ErrOutsideWorkingHours
	}

	if w.Start.Before(now) {
		return ErrInPast
	}
	return nil
}

func lunchMinutes(day business.DaySchedule) (int, int, bool) {
	ls, le, ok := day.Lunch()
	if !ok {
		return 0, 0, false
	}
	return localtime.MinuteOfDay(ls), localtime.MinuteOfDay(le), true
}
