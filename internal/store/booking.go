package store

// Booking is the widget's in-progress or confirmed appointment.
// Nil pointers are unset values.
type Booking struct {
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Service   *string `json:"service"`
	Confirmed bool    `json:"confirmed"`
}

// Patch is a partial Booking for SetBooking. Absent fields are left alone.
type Patch struct {
	Date      Field[string]
	Time      Field[string]
	Service   Field[string]
	Confirmed *bool
}

// MutationType names a store mutation.
type MutationType string

const (
	MutationSetBooking     MutationType = "setBooking"
	MutationConfirmBooking MutationType = "confirmBooking"
)

// MutationEvent is delivered to subscribers after each mutation.
type MutationEvent struct {
	Type   MutationType
	Before Booking
	After  Booking
}

// Confirmed reports whether this mutation moved the booking from
// unconfirmed to confirmed.
func (e MutationEvent) Confirmed() bool {
	return !e.Before.Confirmed && e.After.Confirmed
}

func (e MutationEvent) clone() MutationEvent {
	return MutationEvent{Type: e.Type, Before: e.Before.clone(), After: e.After.clone()}
}

func (b Booking) clone() Booking {
	return Booking{
		Date:      clonePtr(b.Date),
		Time:      clonePtr(b.Time),
		Service:   clonePtr(b.Service),
		Confirmed: b.Confirmed,
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func merge[T any](dst **T, f Field[T]) {
	if !f.IsSet() {
		return
	}
	*dst = clonePtr(f.Ptr())
}
