package business

import (
	"strings"
	"time"
)

type PlanTier string

const (
	PlanFree    PlanTier = "free"
	PlanPro     PlanTier = "pro"
	PlanPremium PlanTier = "premium"
)

func (p PlanTier) String() string {
	return string(p)
}

func (p PlanTier) IsValid() bool {
	switch p {
	case PlanFree, PlanPro, PlanPremium:
		return true
	default:
		return false
	}
}

// ParsePlanTier maps unknown or empty values to the free tier.
func ParsePlanTier(s string) PlanTier {
	p := PlanTier(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return PlanFree
	}
	return p
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts English weekday names in any case.
func ParseWeekday(s string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return wd, ok
}
