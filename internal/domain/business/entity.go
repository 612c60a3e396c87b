package business

import (
	"time"

	"agenda-engine/internal/pkg/localtime"

	"cloud.google.com/go/civil"
)

// Profile is a business configuration with every default applied.
type Profile struct {
	slug                   string
	name                   string
	location               *time.Location
	rawTimezone            string
	zoneFallback           bool
	workDays               []time.Weekday
	days                   [7]DaySchedule
	slotMinutes            int
	maxPerDay              int
	maxPerHour             int
	plan                   PlanTier
	refreshToken           string
	ownerEmail             string
	active                 bool
	subscriptionValidUntil *civil.Date
	reconnectNotifiedAt    *time.Time
	nearLimitNotifiedMonth string
}

// RawDay mirrors one entry of the stored per-weekday configuration.
type RawDay struct {
	Enabled *bool     `json:"enabled,omitempty"`
	Start   string    `json:"start,omitempty"`
	End     string    `json:"end,omitempty"`
	Lunch   *RawLunch `json:"lunch,omitempty"`
}

type RawLunch struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// RawConfig is the business row as stored, before normalization.
type RawConfig struct {
	Slug                   string
	Name                   string
	Timezone               string
	WorkDays               []int
	DefaultDay             *RawDay
	PerDay                 map[string]RawDay
	DurationMinutes        *int
	MaxPerDay              *int
	MaxPerHour             *int
	Plan                   string
	RefreshToken           *string
	OwnerEmail             *string
	Active                 bool
	SubscriptionValidUntil *civil.Date
	ReconnectNotifiedAt    *time.Time
	NearLimitNotifiedMonth *string
}

type Defaults struct {
	Location        *time.Location
	DurationMinutes int
	MaxPerDay       int
	MaxPerHour      int
	DayStart        civil.Time
	DayEnd          civil.Time
	WorkDays        []time.Weekday
}

func StandardDefaults(loc *time.Location) Defaults {
	return Defaults{
		Location:        loc,
		DurationMinutes: 30,
		MaxPerDay:       5,
		MaxPerHour:      1,
		DayStart:        civil.Time{Hour: 9},
		DayEnd:          civil.Time{Hour: 17},
		WorkDays:        []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	}
}

// Resolve normalizes raw against defaults. It never fails: malformed fields fall back.
func Resolve(raw RawConfig, d Defaults) *Profile {
	p := &Profile{
		slug:                   raw.Slug,
		name:                   raw.Name,
		rawTimezone:            raw.Timezone,
		slotMinutes:            positiveOr(raw.DurationMinutes, d.DurationMinutes),
		maxPerDay:              positiveOr(raw.MaxPerDay, d.MaxPerDay),
		maxPerHour:             positiveOr(raw.MaxPerHour, d.MaxPerHour),
		plan:                   ParsePlanTier(raw.Plan),
		active:                 raw.Active,
		subscriptionValidUntil: raw.SubscriptionValidUntil,
		reconnectNotifiedAt:    raw.ReconnectNotifiedAt,
	}
	if raw.RefreshToken != nil {
		p.refreshToken = *raw.RefreshToken
	}
	if raw.OwnerEmail != nil {
		p.ownerEmail = *raw.OwnerEmail
	}
	if raw.NearLimitNotifiedMonth != nil {
		p.nearLimitNotifiedMonth = *raw.NearLimitNotifiedMonth
	}

	loc, err := localtime.LoadZone(raw.Timezone)
	if err != nil {
		loc = d.Location
		p.zoneFallback = true
	}
	p.location = loc

	p.workDays = resolveWorkDays(raw.WorkDays, d.WorkDays)

	base, _ := NewDaySchedule(d.DayStart, d.DayEnd, nil, nil)
	fallback := defaultDay(raw.DefaultDay, d)
	working := make(map[time.Weekday]bool, len(p.workDays))
	for _, wd := range p.workDays {
		working[wd] = true
	}
	overrides := make(map[time.Weekday]RawDay, len(raw.PerDay))
	for name, day := range raw.PerDay {
		if wd, ok := ParseWeekday(name); ok {
			overrides[wd] = day
		}
	}

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if o, ok := overrides[wd]; ok {
			// an override must opt in explicitly
			if o.Enabled == nil || !*o.Enabled {
				p.days[wd] = DisabledDay()
			} else {
				p.days[wd] = overrideDay(o, base)
			}
			continue
		}
		if working[wd] {
			p.days[wd] = fallback
		} else {
			p.days[wd] = DisabledDay()
		}
	}

	return p
}

func positiveOr(v *int, def int) int {
	if v == nil || *v <= 0 {
		return def
	}
	return *v
}

func resolveWorkDays(raw []int, def []time.Weekday) []time.Weekday {
	if len(raw) == 0 {
		return append([]time.Weekday(nil), def...)
	}
	seen := make(map[time.Weekday]bool, len(raw))
	out := make([]time.Weekday, 0, len(raw))
	for _, n := range raw {
		if n < 0 || n > 6 {
			continue
		}
		wd := time.Weekday(n)
		if seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd)
	}
	return out
}

func defaultDay(raw *RawDay, d Defaults) DaySchedule {
	base, _ := NewDaySchedule(d.DayStart, d.DayEnd, nil, nil)
	if raw == nil {
		return base
	}
	day := overrideDay(*raw, base)
	if !day.Enabled() {
		return base
	}
	return day
}

// overrideDay applies raw on top of base. Unparsable times keep the base window.
func overrideDay(raw RawDay, base DaySchedule) DaySchedule {
	if raw.Enabled != nil && !*raw.Enabled {
		return DisabledDay()
	}

	start, end := base.Start(), base.End()
	if t, err := localtime.ParseTime(raw.Start); err == nil {
		start = t
	}
	if t, err := localtime.ParseTime(raw.End); err == nil {
		end = t
	}

	var lunchStart, lunchEnd *civil.Time
	if raw.Lunch != nil {
		ls, errS := localtime.ParseTime(raw.Lunch.Start)
		le, errE := localtime.ParseTime(raw.Lunch.End)
		if errS == nil && errE == nil {
			lunchStart, lunchEnd = &ls, &le
		}
	}

	if day, err := NewDaySchedule(start, end, lunchStart, lunchEnd); err == nil {
		return day
	}
	if day, err := NewDaySchedule(start, end, nil, nil); err == nil {
		return day
	}
	return base
}

func (p *Profile) Slug() string                        { return p.slug }
func (p *Profile) Name() string                        { return p.name }
func (p *Profile) Location() *time.Location            { return p.location }
func (p *Profile) RawTimezone() string                 { return p.rawTimezone }
func (p *Profile) ZoneFallback() bool                  { return p.zoneFallback }
func (p *Profile) WorkDays() []time.Weekday            { return p.workDays }
func (p *Profile) SlotMinutes() int                    { return p.slotMinutes }
func (p *Profile) SlotDuration() time.Duration         { return time.Duration(p.slotMinutes) * time.Minute }
func (p *Profile) MaxPerDay() int                      { return p.maxPerDay }
func (p *Profile) MaxPerHour() int                     { return p.maxPerHour }
func (p *Profile) Plan() PlanTier                      { return p.plan }
func (p *Profile) RefreshToken() string                { return p.refreshToken }
func (p *Profile) OwnerEmail() string                  { return p.ownerEmail }
func (p *Profile) Active() bool                        { return p.active }
func (p *Profile) SubscriptionValidUntil() *civil.Date { return p.subscriptionValidUntil }
func (p *Profile) ReconnectNotifiedAt() *time.Time     { return p.reconnectNotifiedAt }
func (p *Profile) NearLimitNotifiedMonth() string      { return p.nearLimitNotifiedMonth }

func (p *Profile) DayFor(wd time.Weekday) DaySchedule {
	return p.days[wd]
}

func (p *Profile) ScheduleOn(d civil.Date) DaySchedule {
	return p.days[d.In(p.location).Weekday()]
}

func (p *Profile) HasCredential() bool {
	return p.refreshToken != ""
}

// DisconnectionOpen reports whether a reconnection notice was sent and not yet resolved.
func (p *Profile) DisconnectionOpen() bool {
	return p.reconnectNotifiedAt != nil
}

// SubscriptionActive evaluates the validity date against today in the business zone.
func (p *Profile) SubscriptionActive(now time.Time) bool {
	if !p.active {
		return false
	}
	if p.subscriptionValidUntil == nil {
		return true
	}
	today := localtime.Today(now, p.location)
	return !p.subscriptionValidUntil.Before(today)
}

func (p *Profile) Today(now time.Time) civil.Date {
	return localtime.Today(now, p.location)
}
