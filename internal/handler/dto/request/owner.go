package request

import "agenda-engine/internal/usecase/queries"

type OwnerAppointmentsQuery struct {
	From             string `form:"from"`
	To               string `form:"to"`
	IncludeCancelled bool   `form:"include_cancelled"`
	Cursor           string `form:"cursor"`
	Limit            int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q OwnerAppointmentsQuery) ToListRequest() (queries.AppointmentListRequest, *queries.Cursor) {
	req := queries.AppointmentListRequest{
		From:             q.From,
		To:               q.To,
		IncludeCancelled: q.IncludeCancelled,
	}
	if q.Cursor == "" {
		return req, nil
	}
	return req, &queries.Cursor{After: q.Cursor}
}

type OAuthStartQuery struct {
	Slug string `form:"slug" binding:"required"`
}

type OAuthCallbackQuery struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}
