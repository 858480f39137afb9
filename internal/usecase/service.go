package usecase

import (
	"booking-widget/internal/data/repository"
	"booking-widget/internal/store"
	"booking-widget/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService

	recorder *ConfirmationRecorder
}

// NewService builds the services around st. repo may be nil when no
// database is configured, in which case confirmations are not recorded.
func NewService(st *store.Store, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	service := &Service{
		Booking: NewBookingService(st, log),
	}

	if repo != nil {
		service.recorder = NewConfirmationRecorder(repo.Confirmation, config.Recorder.Timeout, log)
		st.Subscribe(service.recorder.OnMutation)
	}

	return service
}

// Close flushes pending confirmation writes.
func (s *Service) Close() {
	if s.recorder != nil {
		s.recorder.Close()
	}
}
