package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"booking-widget/internal/dto/request"
	"booking-widget/internal/usecase"
	"booking-widget/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /api/booking
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.GetBooking(r.Context()))
}

// UpdateBooking handles PATCH /api/booking
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmBooking handles POST /api/booking/confirm
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.ConfirmBooking(r.Context()))
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *utils.ValidationError
	if errors.As(err, &validationErr) {
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)
		return
	}

	h.log.Error(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
