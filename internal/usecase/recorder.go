package usecase

import (
	"context"
	"sync"
	"time"

	"booking-widget/internal/data/entity"
	"booking-widget/internal/data/repository"
	"booking-widget/internal/store"

	"go.uber.org/zap"
)

const (
	defaultRecordTimeout = 3 * time.Second
	recordQueueSize      = 64
)

// ConfirmationRecorder writes a row the first time the booking is confirmed.
// Writes happen on a background goroutine; failures are logged and never
// touch the store.
type ConfirmationRecorder struct {
	repo    repository.ConfirmationRepository
	timeout time.Duration
	now     func() time.Time
	log     *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan *entity.BookingConfirmation
	done   chan struct{}
}

func NewConfirmationRecorder(repo repository.ConfirmationRepository, timeout time.Duration, log *zap.Logger) *ConfirmationRecorder {
	if timeout <= 0 {
		timeout = defaultRecordTimeout
	}
	r := &ConfirmationRecorder{
		repo:    repo,
		timeout: timeout,
		now:     time.Now,
		log:     log.With(zap.String("component", "recorder")),
		queue:   make(chan *entity.BookingConfirmation, recordQueueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// OnMutation is a store.Subscriber. It only enqueues.
func (r *ConfirmationRecorder) OnMutation(event store.MutationEvent) {
	if !event.Confirmed() {
		return
	}

	confirmation := &entity.BookingConfirmation{
		BookingDate: event.After.Date,
		BookingTime: event.After.Time,
		Service:     event.After.Service,
		ConfirmedAt: r.now().UTC(),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.Warn("Recorder closed, dropping booking confirmation")
		return
	}

	select {
	case r.queue <- confirmation:
	default:
		r.log.Warn("Record queue full, dropping booking confirmation")
	}
}

// Close stops accepting confirmations and waits for queued ones to be written.
func (r *ConfirmationRecorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	<-r.done
}

func (r *ConfirmationRecorder) run() {
	defer close(r.done)

	for confirmation := range r.queue {
		r.record(confirmation)
	}
}

func (r *ConfirmationRecorder) record(confirmation *entity.BookingConfirmation) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.repo.Create(ctx, confirmation); err != nil {
		r.log.Error("Failed to record booking confirmation", zap.Error(err))
		return
	}

	r.log.Info("Booking confirmation recorded",
		zap.String("confirmation_id", confirmation.ID.String()),
	)
}
