package converter

import (
	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/slot"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	client := a.Client()
	return sqlc.CreateAppointmentParams{
		ID:                a.ID(),
		BusinessSlug:      a.BusinessSlug(),
		ClientName:        client.Name(),
		ClientEmail:       client.Email(),
		ClientPhone:       pgconv.OptionalStringToPgtype(client.Phone()),
		LocalDate:         pgconv.DateToPgtype(a.Date()),
		StartAt:           pgconv.TimeToPgtype(a.Window().Start),
		EndAt:             pgconv.TimeToPgtype(a.Window().End),
		ExternalEventID:   pgconv.StringPtrToPgtype(a.ExternalEventID()),
		CancelTokenDigest: a.TokenDigest(),
		Mirrored:          a.Mirrored(),
		CreatedAt:         pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentFromRow(row sqlc.Appointments) *appointment.Appointment {
	return appointment.ReconstructAppointment(
		row.ID,
		row.BusinessSlug,
		appointment.ReconstructClientInfo(row.ClientName, row.ClientEmail, pgconv.StringFromPgtype(row.ClientPhone)),
		pgconv.DateFromPgtype(row.LocalDate),
		slot.Window{Start: row.StartAt.Time, End: row.EndAt.Time},
		pgconv.StringPtrFromPgtype(row.ExternalEventID),
		row.CancelTokenDigest,
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
