package appointment

import (
	"crypto/rand"
	"io"

	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/clock"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

type Factory struct {
	Clock  clock.Clock
	Random io.Reader
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{
		Clock:  clock,
		Random: rand.Reader,
	}
}

// CreateAppointment returns the new appointment with the raw cancel token,
// which is never recoverable from the appointment afterwards.
func (f *Factory) CreateAppointment(
	businessSlug string,
	client ClientInfo,
	date civil.Date,
	window slot.Window,
	externalEventID *string,
) (*Appointment, CancelToken, error) {
	if !window.Start.Before(window.End) {
		return nil, CancelToken{}, slot.ErrEmptyWindow
	}

	token, err := GenerateCancelToken(f.Random)
	if err != nil {
		return nil, CancelToken{}, err
	}

	return &Appointment{
		id:              uuid.New(),
		businessSlug:    businessSlug,
		client:          client,
		date:            date,
		window:          window,
		externalEventID: externalEventID,
		tokenDigest:     token.Digest(),
		status:          StatusBooked,
		mirrored:        externalEventID != nil,
		createdAt:       f.Clock.Now(),
	}, token, nil
}
