//go:build e2e

package e2e

import "time"

// UpcomingWeekday is a date at least a week ahead, so the past-slot rule never interferes.
func UpcomingWeekday(wd time.Weekday) string {
	loc, err := time.LoadLocation("America/Santo_Domingo")
	if err != nil {
		loc = time.UTC
	}
	d := time.Now().In(loc).AddDate(0, 0, 7)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}
