package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingConfirmation is the row written when the widget's booking is
// confirmed for the first time.
type BookingConfirmation struct {
	ID          uuid.UUID `db:"id"`
	BookingDate *string   `db:"booking_date"`
	BookingTime *string   `db:"booking_time"`
	Service     *string   `db:"service"`
	ConfirmedAt time.Time `db:"confirmed_at"`
}
