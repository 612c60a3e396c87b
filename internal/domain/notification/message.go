package notification

type Kind string

const (
	KindReconnectNeeded     Kind = "reconnect_needed"
	KindNearQuota           Kind = "near_quota"
	KindBookingConfirmation Kind = "booking_confirmation"
	KindOwnerNewBooking     Kind = "owner_new_booking"
	KindOwnerCancellation   Kind = "owner_cancellation"
)

func (k Kind) String() string {
	return string(k)
}

// Message is rendered by the dispatcher; Data fields unused by a kind stay zero.
type Message struct {
	Kind Kind
	To   string
	Data Data
}

type Data struct {
	BusinessName string
	BusinessSlug string
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	Date         string
	Time         string
	CancelURL    string
	ReconnectURL string
	Count        int
	Limit        int
}
