package response

import (
	"time"

	"agenda-engine/internal/usecase/commands"
	"agenda-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	Accepted      bool       `json:"accepted"`
	Reason        string     `json:"reason,omitempty"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Mirrored      bool       `json:"mirrored"`
	CancelToken   string     `json:"cancel_token,omitempty"`
	Start         *time.Time `json:"start,omitempty"`
	End           *time.Time `json:"end,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	resp := &BookingResponse{
		Accepted:      r.Accepted,
		Reason:        r.Reason.String(),
		AppointmentID: r.AppointmentID,
		Mirrored:      r.Mirrored,
		CancelToken:   r.CancelToken,
	}
	if r.Accepted {
		start, end := r.Start, r.End
		resp.Start, resp.End = &start, &end
	}
	return resp
}

type CancelResponse struct {
	Success bool `json:"success"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromAssessment(a *queries.Assessment) *AvailabilityResponse {
	return &AvailabilityResponse{Available: a.Available, Reason: a.Reason.String()}
}
