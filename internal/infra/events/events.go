// Package events publishes booking lifecycle events to a broker.
package events

import (
	"context"
	"encoding/json"

	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/usecase/shared"
)

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"
)

func encode(evt shared.BookingEvent) ([]byte, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, errs.Wrap(err, "marshal booking event")
	}
	return payload, nil
}

// eventID is stable per appointment and type so consumers can deduplicate redeliveries.
func eventID(evt shared.BookingEvent) string {
	return evt.AppointmentID.String() + ":" + string(evt.Type)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shared.BookingEvent) error { return nil }
