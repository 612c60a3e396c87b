package converter

import (
	"encoding/json"

	"agenda-engine/internal/domain/business"
	sqlc "agenda-engine/internal/infra/sqlc/generated"
	"agenda-engine/internal/pkg/errs"
	"agenda-engine/internal/pkg/pgconv"
)

// BusinessRowToRaw decodes the JSONB day columns; normalization happens in the domain.
// The returned config is usable even when err reports an undecodable day column.
func BusinessRowToRaw(row sqlc.Businesses) (*business.RawConfig, error) {
	raw := &business.RawConfig{
		Slug:                   row.Slug,
		Name:                   row.Name,
		Timezone:               row.Timezone,
		DurationMinutes:        pgconv.IntPtrFromPgtype(row.DurationMinutes),
		MaxPerDay:              pgconv.IntPtrFromPgtype(row.MaxPerDay),
		MaxPerHour:             pgconv.IntPtrFromPgtype(row.MaxPerHour),
		Plan:                   row.Plan,
		RefreshToken:           pgconv.StringPtrFromPgtype(row.RefreshToken),
		OwnerEmail:             pgconv.StringPtrFromPgtype(row.OwnerEmail),
		Active:                 row.Active,
		SubscriptionValidUntil: pgconv.DatePtrFromPgtype(row.SubscriptionValidUntil),
		ReconnectNotifiedAt:    pgconv.TimePtrFromPgtype(row.ReconnectNotifiedAt),
		NearLimitNotifiedMonth: pgconv.StringPtrFromPgtype(row.NearLimitNotifiedMonth),
	}

	if len(row.WorkDays) > 0 {
		raw.WorkDays = make([]int, 0, len(row.WorkDays))
		for _, wd := range row.WorkDays {
			raw.WorkDays = append(raw.WorkDays, int(wd))
		}
	}

	var decodeErr error
	if len(row.DefaultDay) > 0 && string(row.DefaultDay) != "null" {
		var day business.RawDay
		if err := json.Unmarshal(row.DefaultDay, &day); err != nil {
			decodeErr = errs.Wrap(err, "decode default_day")
		} else {
			raw.DefaultDay = &day
		}
	}

	if len(row.PerDayConfig) > 0 && string(row.PerDayConfig) != "null" {
		var perDay map[string]business.RawDay
		if err := json.Unmarshal(row.PerDayConfig, &perDay); err != nil {
			decodeErr = errs.Wrap(err, "decode per_day_config")
		} else {
			raw.PerDay = perDay
		}
	}

	return raw, decodeErr
}
