package request

import (
	"strings"

	"agenda-engine/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Name            string `json:"name" binding:"required,max=120"`
	Email           string `json:"email" binding:"required,max=254"`
	Phone           string `json:"phone" binding:"omitempty,max=32"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes" binding:"omitempty"`
}

func (r CreateBookingRequest) ToCommand(slug string) commands.BookingRequest {
	return commands.BookingRequest{
		Slug:            slug,
		ClientName:      strings.TrimSpace(r.Name),
		ClientEmail:     strings.TrimSpace(r.Email),
		ClientPhone:     strings.TrimSpace(r.Phone),
		Date:            strings.TrimSpace(r.Date),
		Time:            strings.TrimSpace(r.Time),
		DurationMinutes: r.DurationMinutes,
	}
}
