package appointment

import (
	"time"

	"agenda-engine/internal/domain/slot"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type Appointment struct {
	id              uuid.UUID
	businessSlug    string
	client          ClientInfo
	date            civil.Date
	window          slot.Window
	externalEventID *string
	tokenDigest     []byte
	status          Status
	cancelledAt     *time.Time
	mirrored        bool
	createdAt       time.Time
}

func ReconstructAppointment(
	id uuid.UUID,
	businessSlug string,
	client ClientInfo,
	date civil.Date,
	window slot.Window,
	externalEventID *string,
	tokenDigest []byte,
	cancelledAt *time.Time,
	createdAt time.Time,
) *Appointment {
	status := StatusBooked
	if cancelledAt != nil {
		status = StatusCancelled
	}
	return &Appointment{
		id:              id,
		businessSlug:    businessSlug,
		client:          client,
		date:            date,
		window:          window,
		externalEventID: externalEventID,
		tokenDigest:     tokenDigest,
		status:          status,
		cancelledAt:     cancelledAt,
		mirrored:        externalEventID != nil,
		createdAt:       createdAt,
	}
}

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}

func (a *Appointment) ID() uuid.UUID            { return a.id }
func (a *Appointment) BusinessSlug() string     { return a.businessSlug }
func (a *Appointment) Client() ClientInfo       { return a.client }
func (a *Appointment) Date() civil.Date         { return a.date }
func (a *Appointment) Window() slot.Window      { return a.window }
func (a *Appointment) ExternalEventID() *string { return a.externalEventID }
func (a *Appointment) TokenDigest() []byte      { return a.tokenDigest }
func (a *Appointment) Status() Status           { return a.status }
func (a *Appointment) CancelledAt() *time.Time  { return a.cancelledAt }
func (a *Appointment) Mirrored() bool           { return a.mirrored }
func (a *Appointment) CreatedAt() time.Time     { return a.createdAt }
