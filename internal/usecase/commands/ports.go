package commands

import (
	"time"

	"github.com/google/uuid"

	"agenda-engine/internal/usecase/shared"
)

// StateSigner protects the OAuth round trip; the state carries the business slug.
type StateSigner interface {
	SignState(slug string) (string, error)
	VerifyState(state string) (string, error)
}

// Links builds client- and owner-facing URLs placed in notifications.
type Links struct {
	CancelBase string
}

func (l Links) CancelURL(token string) string {
	return l.CancelBase + token
}

type BookingRequest struct {
	Slug            string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Date            string
	Time            string
	DurationMinutes *int
}

type BookingResult struct {
	Accepted      bool
	Reason        shared.Reason
	AppointmentID *uuid.UUID
	Mirrored      bool
	CancelToken   string
	Start         time.Time
	End           time.Time
}

func rejected(reason shared.Reason) *BookingResult {
	return &BookingResult{Accepted: false, Reason: reason}
}
