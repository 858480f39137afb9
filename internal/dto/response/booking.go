package response

import "booking-widget/internal/store"

type BookingResponse struct {
	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Service   *string `json:"service"`
	Confirmed bool    `json:"confirmed"`
}

func BookingToResponse(b store.Booking) *BookingResponse {
	return &BookingResponse{
		Date:      b.Date,
		Time:      b.Time,
		Service:   b.Service,
		Confirmed: b.Confirmed,
	}
}
