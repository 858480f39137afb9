package wire

import (
	"fmt"

	"booking-widget/internal/store"

	"github.com/VictoriaMetrics/metrics"
)

type mutationMetrics struct {
	setBooking     *metrics.Counter
	confirmBooking *metrics.Counter
	confirmations  *metrics.Counter
}

func genMetricName(name, mutation string) string {
	return fmt.Sprintf(`%s{mutation=%q}`, name, mutation)
}

// Counters are get-or-create so Wiring can run more than once per process.
func newMutationMetrics() *mutationMetrics {
	return &mutationMetrics{
		setBooking:     metrics.GetOrCreateCounter(genMetricName("booking_mutations_total", string(store.MutationSetBooking))),
		confirmBooking: metrics.GetOrCreateCounter(genMetricName("booking_mutations_total", string(store.MutationConfirmBooking))),
		confirmations:  metrics.GetOrCreateCounter("booking_confirmations_total"),
	}
}

func (m *mutationMetrics) observe(event store.MutationEvent) {
	switch event.Type {
	case store.MutationSetBooking:
		m.setBooking.Inc()
	case store.MutationConfirmBooking:
		m.confirmBooking.Inc()
	}

	if event.Confirmed() {
		m.confirmations.Inc()
	}
}
