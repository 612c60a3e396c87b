//go:build unit || e2e

package builder

import (
	"bytes"
	"time"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/handler/dto/request"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/clock"
	"agenda-engine/internal/pkg/pgconv"
	"agenda-engine/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	BusinessSlug    string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Date            civil.Date
	Start           time.Time
	Duration        time.Duration
	ExternalEventID *string
	TokenSeed       byte
	CancelledAt     *time.Time
	CreatedAt       time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	loc, _ := time.LoadLocation(DefaultZone)
	return &AppointmentBuilder{
		ID:           uuid.New(),
		BusinessSlug: "acme",
		ClientName:   "Ana Pérez",
		ClientEmail:  "ana@example.test",
		Date:         civil.Date{Year: 2025, Month: time.March, Day: 10},
		Start:        time.Date(2025, time.March, 10, 10, 0, 0, 0, loc),
		Duration:     30 * time.Minute,
		TokenSeed:    0xab,
		CreatedAt:    time.Date(2025, time.March, 9, 16, 0, 0, 0, time.UTC),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain returns a fresh appointment with the raw token derived from TokenSeed.
func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, appointment.CancelToken, error) {
	client, err := appointment.NewClientInfo(b.ClientName, b.ClientEmail, b.ClientPhone)
	if err != nil {
		return nil, appointment.CancelToken{}, err
	}
	f := appointment.NewFactory(clock.NewMockClock(b.CreatedAt))
	f.Random = bytes.NewReader(bytes.Repeat([]byte{b.TokenSeed}, 32))
	return f.CreateAppointment(b.BusinessSlug, client, b.Date, b.window(), b.ExternalEventID)
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointments {
	token, _ := appointment.GenerateCancelToken(bytes.NewReader(bytes.Repeat([]byte{b.TokenSeed}, 32)))
	w := b.window()
	return sqlc.Appointments{
		ID:                b.ID,
		BusinessSlug:      b.BusinessSlug,
		ClientName:        b.ClientName,
		ClientEmail:       b.ClientEmail,
		ClientPhone:       pgconv.OptionalStringToPgtype(b.ClientPhone),
		LocalDate:         pgconv.DateToPgtype(b.Date),
		StartAt:           pgconv.TimeToPgtype(w.Start),
		EndAt:             pgconv.TimeToPgtype(w.End),
		ExternalEventID:   pgconv.StringPtrToPgtype(b.ExternalEventID),
		CancelTokenDigest: token.Digest(),
		Cancelled:         b.CancelledAt != nil,
		CancelledAt:       pgconv.TimePtrToPgtype(b.CancelledAt),
		Mirrored:          b.ExternalEventID != nil,
		CreatedAt:         pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

// BuildBookingRequestDTO is the public booking payload for this appointment.
func (b *AppointmentBuilder) BuildBookingRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		Name:  b.ClientName,
		Email: b.ClientEmail,
		Phone: b.ClientPhone,
		Date:  b.Date.String(),
		Time:  b.Start.Format("15:04"),
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	w := b.window()
	v := &queries.AppointmentView{
		ID:          b.ID,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		Date:        b.Date.String(),
		StartAt:     w.Start,
		EndAt:       w.End,
		Mirrored:    b.ExternalEventID != nil,
		Cancelled:   b.CancelledAt != nil,
		CancelledAt: b.CancelledAt,
		CreatedAt:   b.CreatedAt,
	}
	if b.ClientPhone != "" {
		phone := b.ClientPhone
		v.ClientPhone = &phone
	}
	return v
}

func (b *AppointmentBuilder) window() slot.Window {
	return slot.Window{Start: b.Start, End: b.Start.Add(b.Duration)}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithSlug(slug string) *AppointmentBuilder {
	b.BusinessSlug = slug
	return b
}

func (b *AppointmentBuilder) WithStart(date civil.Date, start time.Time) *AppointmentBuilder {
	b.Date = date
	b.Start = start
	return b
}

func (b *AppointmentBuilder) WithEventID(id string) *AppointmentBuilder {
	b.ExternalEventID = &id
	return b
}

func (b *AppointmentBuilder) WithPhone(phone string) *AppointmentBuilder {
	b.ClientPhone = phone
	return b
}

func (b *AppointmentBuilder) WithTokenSeed(seed byte) *AppointmentBuilder {
	b.TokenSeed = seed
	return b
}

func (b *AppointmentBuilder) AsCancelled(at time.Time) *AppointmentBuilder {
	b.CancelledAt = &at
	return b
}
