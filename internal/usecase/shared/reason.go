package shared

// Reason explains why a booking or availability check was rejected.
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonSubscriptionInactive Reason = "subscription inactive"
	ReasonQuotaExceeded        Reason = "quota exceeded"
	ReasonDayFull              Reason = "day full"
	ReasonSlotOccupied         Reason = "slot occupied"
	ReasonOutsideWorkingHours  Reason = "outside working hours"
	ReasonSlotInPast           Reason = "slot in the past"
)

func (r Reason) String() string {
	return string(r)
}
