// Package store holds the booking widget's single Booking record.
package store

import (
	"sync"

	"go.uber.org/zap"
)

// Subscriber receives every mutation, each call with its own copy of the
// event. It runs outside the state lock and may read the store, but must not
// mutate it or change subscriptions. Mutations wait for delivery to finish,
// so slow work belongs on another goroutine.
type Subscriber func(MutationEvent)

type Store struct {
	mu      sync.RWMutex
	booking Booking

	// notifyMu keeps delivery in mutation order.
	notifyMu    sync.Mutex
	subscribers map[int]Subscriber
	nextID      int

	log *zap.Logger
}

// New returns a store with an unset, unconfirmed booking.
func New(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		subscribers: make(map[int]Subscriber),
		log:         log.With(zap.String("component", "store")),
	}
}

// Booking returns a snapshot of the current record.
func (s *Store) Booking() Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.booking.clone()
}

// SetBooking merges p into the record field by field and returns the
// committed record. Inputs are not validated. A confirmed booking stays
// confirmed even if p says otherwise.
func (s *Store) SetBooking(p Patch) Booking {
	return s.mutate(MutationSetBooking, func(b *Booking) {
		merge(&b.Date, p.Date)
		merge(&b.Time, p.Time)
		merge(&b.Service, p.Service)
		if p.Confirmed != nil {
			if *p.Confirmed {
				b.Confirmed = true
			} else if b.Confirmed {
				s.log.Debug("Ignoring confirmed=false on a confirmed booking")
			}
		}
	})
}

// ConfirmBooking marks the booking as confirmed and returns the committed
// record.
func (s *Store) ConfirmBooking() Booking {
	return s.mutate(MutationConfirmBooking, func(b *Booking) {
		b.Confirmed = true
	})
}

// Subscribe registers fn for all subsequent mutations. The returned func
// removes it.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.notifyMu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.notifyMu.Unlock()

	return func() {
		s.notifyMu.Lock()
		delete(s.subscribers, id)
		s.notifyMu.Unlock()
	}
}

// mutate applies fn and delivers the event. Lock order is notifyMu then mu,
// and mu is released before delivery so listeners and readers never wait on
// each other.
func (s *Store) mutate(typ MutationType, fn func(*Booking)) Booking {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	event := MutationEvent{Type: typ, Before: s.booking.clone()}
	fn(&s.booking)
	event.After = s.booking.clone()
	s.mu.Unlock()

	s.log.Debug("Booking mutated",
		zap.String("mutation", string(typ)),
		zap.Bool("confirmed", event.After.Confirmed),
	)

	for _, listener := range s.subscribers {
		listener(event.clone())
	}

	return event.After.clone()
}
