package queries

import (
	"time"

	"agenda-engine/internal/domain/business"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/usecase/shared"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// PublicConfigView is the business configuration with defaults applied.
type PublicConfigView struct {
	Name            string             `json:"name"`
	Timezone        string             `json:"timezone"`
	DurationMinutes int                `json:"duration_minutes"`
	MaxPerDay       int                `json:"max_per_day"`
	MaxPerHour      int                `json:"max_per_hour"`
	Plan            string             `json:"plan"`
	WorkDays        []int              `json:"work_days"`
	Days            map[string]DayView `json:"days"`
}

type DayView struct {
	Enabled bool       `json:"enabled"`
	Start   string     `json:"start,omitempty"`
	End     string     `json:"end,omitempty"`
	Lunch   *LunchView `json:"lunch,omitempty"`
}

type LunchView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityRequest struct {
	Slug            string
	Date            string
	Time            string
	DurationMinutes *int
}

// Assessment is the outcome of an availability check. Access is set when the
// external calendar was readable, so the caller can mirror into it.
type Assessment struct {
	Available bool
	Reason    shared.Reason
	Profile   *business.Profile
	Date      civil.Date
	Window    slot.Window
	Access    *shared.Access
	Source    string
}

type AvailableHoursView struct {
	Date  string   `json:"date"`
	Hours []string `json:"available_hours"`
}

type UsageView struct {
	Slug  string `json:"slug"`
	Plan  string `json:"plan"`
	Month string `json:"month"`
	Count int    `json:"count"`
	Limit *int   `json:"limit,omitempty"`
}

// AppointmentView represents read-optimized appointment data for owners
type AppointmentView struct {
	ID          uuid.UUID  `json:"id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`
	ClientPhone *string    `json:"client_phone,omitempty"`
	Date        string     `json:"date"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Mirrored    bool       `json:"mirrored"`
	Cancelled   bool       `json:"cancelled"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type AppointmentListRequest struct {
	From             string
	To               string
	IncludeCancelled bool
}

type AppointmentFilter struct {
	From             *time.Time
	To               *time.Time
	IncludeCancelled bool
	AfterStart       *time.Time
	AfterID          *uuid.UUID
	Limit            int
}
