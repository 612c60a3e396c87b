package shared

import (
	"context"
	"time"

	"agenda-engine/internal/domain/notification"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Provider failures are classified by marking with one of these.
var (
	ErrProviderTransient = errs.New("calendar provider temporarily unavailable")
	ErrProviderPermanent = errs.New("calendar credential rejected")
)

// Access is a short-lived provider credential obtained from a refresh credential.
type Access struct {
	Token  string
	Expiry time.Time
}

type CalendarEvent struct {
	Summary       string
	Description   string
	Start         time.Time
	End           time.Time
	TimeZone      string
	AttendeeEmail string
}

type CalendarProvider interface {
	Exchange(ctx context.Context, refreshToken string) (Access, error)
	// ListBusy returns non-cancelled event intervals intersecting [from, to).
	ListBusy(ctx context.Context, access Access, from, to time.Time) ([]slot.Window, error)
	CreateEvent(ctx context.Context, access Access, ev CalendarEvent) (string, error)
	DeleteEvent(ctx context.Context, access Access, eventID string) error
}

type CalendarConnector interface {
	AuthCodeURL(state string) string
	// ExchangeCode returns the refresh credential and the calendar account email.
	ExchangeCode(ctx context.Context, code string) (string, string, error)
}

type Notifier interface {
	Send(ctx context.Context, msg notification.Message) error
}

type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingCancelled BookingEventType = "booking.cancelled"
)

type BookingEvent struct {
	Type          BookingEventType `json:"type"`
	AppointmentID uuid.UUID        `json:"appointmentId"`
	BusinessSlug  string           `json:"businessSlug"`
	Start         time.Time        `json:"start"`
	End           time.Time        `json:"end"`
	Mirrored      bool             `json:"mirrored"`
	OccurredAt    time.Time        `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, evt BookingEvent) error
}

type Metrics interface {
	BookingOutcome(outcome string)
	QuotaFailOpen(slug string)
	SourceFallback(slug string)
	ReconnectNotice(slug string)
}

type NopMetrics struct{}

func (NopMetrics) BookingOutcome(string)  {}
func (NopMetrics) QuotaFailOpen(string)   {}
func (NopMetrics) SourceFallback(string)  {}
func (NopMetrics) ReconnectNotice(string) {}
