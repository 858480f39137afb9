package wire

import (
	"booking-widget/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/booking", func(r chi.Router) {
		// GET /api/booking - current booking
		r.Get("/", bookingHandler.GetBooking)

		// PATCH /api/booking - merge a partial booking
		r.Patch("/", bookingHandler.UpdateBooking)

		// POST /api/booking/confirm - mark the booking confirmed
		r.Post("/confirm", bookingHandler.ConfirmBooking)
	})
}
