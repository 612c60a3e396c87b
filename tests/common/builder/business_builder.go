//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"agenda-engine/internal/domain/business"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgtype"
)

const DefaultZone = "America/Santo_Domingo"

type BusinessBuilder struct {
	Slug                   string
	Name                   string
	Timezone               string
	WorkDays               []int
	DefaultDay             *business.RawDay
	PerDay                 map[string]business.RawDay
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

func NewBusinessBuilder() *BusinessBuilder {
	owner := "owner@acme.test"
	return &BusinessBuilder{
		Slug:       "acme",
		Name:       "Acme Barber",
		Timezone:   DefaultZone,
		WorkDays:   []int{1, 2, 3, 4, 5},
		Plan:       "free",
		OwnerEmail: &owner,
		Active:     true,
	}
}

func (b *BusinessBuilder) With(mutate func(*BusinessBuilder)) *BusinessBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BusinessBuilder) BuildRaw() business.RawConfig {
	return business.RawConfig{
		Slug:                   b.Slug,
		Name:                   b.Name,
		Timezone:               b.Timezone,
		WorkDays:               b.WorkDays,
		DefaultDay:             b.DefaultDay,
		PerDay:                 b.PerDay,
		DurationMinutes:        b.DurationMinutes,
		MaxPerDay:              b.MaxPerDay,
		MaxPerHour:             b.MaxPerHour,
		Plan:                   b.Plan,
		RefreshToken:           b.RefreshToken,
		OwnerEmail:             b.OwnerEmail,
		Active:                 b.Active,
		SubscriptionValidUntil: b.SubscriptionValidUntil,
		ReconnectNotifiedAt:    b.ReconnectNotifiedAt,
		NearLimitNotifiedMonth: b.NearLimitNotifiedMonth,
	}
}

func (b *BusinessBuilder) BuildDomain() *business.Profile {
	loc, _ := time.LoadLocation(DefaultZone)
	return business.Resolve(b.BuildRaw(), business.StandardDefaults(loc))
}

func (b *BusinessBuilder) BuildInfra() sqlc.Businesses {
	workDays := make([]int32, 0, len(b.WorkDays))
	for _, wd := range b.WorkDays {
		workDays = append(workDays, int32(wd))
	}
	perDay, _ := json.Marshal(b.PerDay)
	var defaultDay []byte
	if b.DefaultDay != nil {
		defaultDay, _ = json.Marshal(b.DefaultDay)
	}

	row := sqlc.Businesses{
		Slug:                   b.Slug,
		Name:                   b.Name,
		Timezone:               b.Timezone,
		WorkDays:               workDays,
		DefaultDay:             defaultDay,
		PerDayConfig:           perDay,
		Plan:                   b.Plan,
		RefreshToken:           pgconv.StringPtrToPgtype(b.RefreshToken),
		OwnerEmail:             pgconv.StringPtrToPgtype(b.OwnerEmail),
		Active:                 b.Active,
		NearLimitNotifiedMonth: pgconv.StringPtrToPgtype(b.NearLimitNotifiedMonth),
		CreatedAt:              pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}
	row.DurationMinutes = pgconv.IntPtrToPgtype(b.DurationMinutes)
	row.MaxPerDay = pgconv.IntPtrToPgtype(b.MaxPerDay)
	row.MaxPerHour = pgconv.IntPtrToPgtype(b.MaxPerHour)
	row.SubscriptionValidUntil = pgconv.DatePtrToPgtype(b.SubscriptionValidUntil)
	row.ReconnectNotifiedAt = pgconv.TimePtrToPgtype(b.ReconnectNotifiedAt)
	return row
}

// Fluent builder methods
func (b *BusinessBuilder) WithSlug(slug string) *BusinessBuilder {
	b.Slug = slug
	return b
}

func (b *BusinessBuilder) WithTimezone(tz string) *BusinessBuilder {
	b.Timezone = tz
	return b
}

func (b *BusinessBuilder) WithWorkDays(days ...int) *BusinessBuilder {
	b.WorkDays = days
	return b
}

func (b *BusinessBuilder) WithHours(start, end string) *BusinessBuilder {
	b.DefaultDay = &business.RawDay{Start: start, End: end}
	return b
}

func (b *BusinessBuilder) WithDay(weekday string, day business.RawDay) *BusinessBuilder {
	if b.PerDay == nil {
		b.PerDay = map[string]business.RawDay{}
	}
	b.PerDay[weekday] = day
	return b
}

func (b *BusinessBuilder) WithDuration(minutes int) *BusinessBuilder {
	b.DurationMinutes = &minutes
	return b
}

func (b *BusinessBuilder) WithCaps(perDay, perHour int) *BusinessBuilder {
	b.MaxPerDay = &perDay
	b.MaxPerHour = &perHour
	return b
}

func (b *BusinessBuilder) WithPlan(plan string) *BusinessBuilder {
	b.Plan = plan
	return b
}

func (b *BusinessBuilder) WithRefreshToken(token string) *BusinessBuilder {
	b.RefreshToken = &token
	return b
}

func (b *BusinessBuilder) WithoutRefreshToken() *BusinessBuilder {
	b.RefreshToken = nil
	return b
}

func (b *BusinessBuilder) WithReconnectNotifiedAt(t time.Time) *BusinessBuilder {
	b.ReconnectNotifiedAt = &t
	return b
}

func (b *BusinessBuilder) WithValidUntil(d civil.Date) *BusinessBuilder {
	b.SubscriptionValidUntil = &d
	return b
}

func (b *BusinessBuilder) AsInactive() *BusinessBuilder {
	b.Active = false
	return b
}

func Enabled() *bool {
	v := true
	return &v
}

func Disabled() *bool {
	v := false
	return &v
}
