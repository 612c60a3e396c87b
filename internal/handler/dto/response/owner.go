package response

import (
	"time"

	"agenda-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
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

type AppointmentListResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

type UsageResponse struct {
	Slug  string `json:"slug"`
	Plan  string `json:"plan"`
	Month string `json:"month"`
	Count int    `json:"count"`
	Limit *int   `json:"limit,omitempty"`
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAppointmentViews(views []*queries.AppointmentView, next *queries.Cursor) (*AppointmentListResponse, error) {
	resp := &AppointmentListResponse{Items: make([]*AppointmentResponse, 0, len(views))}
	for _, v := range views {
		item, err := FromAppointmentView(v)
		if err != nil {
			return nil, err
		}
		resp.Items = append(resp.Items, item)
	}
	if next != nil {
		resp.NextCursor = next.After
	}
	return resp, nil
}

func FromUsageView(v *queries.UsageView) *UsageResponse {
	return &UsageResponse{Slug: v.Slug, Plan: v.Plan, Month: v.Month, Count: v.Count, Limit: v.Limit}
}
