package usecase

import (
	"context"

	"booking-widget/internal/dto/request"
	"booking-widget/internal/dto/response"
	"booking-widget/internal/store"
	"booking-widget/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context) *response.BookingResponse
	UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	ConfirmBooking(ctx context.Context) *response.BookingResponse
}

type bookingService struct {
	store *store.Store
	log   *zap.Logger
}

func NewBookingService(st *store.Store, log *zap.Logger) BookingService {
	return &bookingService{
		store: st,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context) *response.BookingResponse {
	return response.BookingToResponse(s.store.Booking())
}

func (s *bookingService) UpdateBooking(ctx context.Context, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, &utils.ValidationError{Fields: errs}
	}

	booking := s.store.SetBooking(req.Patch())

	s.log.Info("Booking updated",
		zap.String("request_id", requestID(ctx)),
		zap.Stringp("date", booking.Date),
		zap.Stringp("time", booking.Time),
		zap.Stringp("service", booking.Service),
		zap.Bool("confirmed", booking.Confirmed),
	)

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context) *response.BookingResponse {
	booking := s.store.ConfirmBooking()

	s.log.Info("Booking confirmed",
		zap.String("request_id", requestID(ctx)),
		zap.Stringp("service", booking.Service),
	)

	return response.BookingToResponse(booking)
}

func requestID(ctx context.Context) string {
	id, _ := utils.GetRequestIDFromContext(ctx)
	return id
}
