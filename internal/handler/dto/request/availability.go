package request

import "agenda-engine/internal/usecase/queries"

type AvailabilityQuery struct {
	Date            string `form:"date" binding:"required"`
	Time            string `form:"time" binding:"required"`
	DurationMinutes *int   `form:"duration" binding:"omitempty"`
}

func (q AvailabilityQuery) ToQuery(slug string) queries.AvailabilityRequest {
	return queries.AvailabilityRequest{
		Slug:            slug,
		Date:            q.Date,
		Time:            q.Time,
		DurationMinutes: q.DurationMinutes,
	}
}

type AvailableHoursQuery struct {
	Date string `form:"date" binding:"required"`
}
