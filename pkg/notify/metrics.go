package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes delivery counters for monitoring. Attach to a Router with
// WithMetrics; a nil Metrics disables instrumentation.
type Metrics struct {
	deliveries  *prometheus.CounterVec
	rateLimited prometheus.Counter
	exhausted   prometheus.Counter
}

// NewMetrics registers the delivery metrics with the given registerer.
// Pass prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notify_deliveries_total",
				Help: "Delivery attempts by vendor and outcome",
			},
			[]string{"vendor", "status"},
		),
		rateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notify_rate_limited_total",
				Help: "Routing attempts rejected by the per-lead daily rate limit",
			},
		),
		exhausted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "notify_channels_exhausted_total",
				Help: "Routing attempts where every capable channel failed",
			},
		),
	}
}

// Deliveries returns the per-vendor delivery counter, labeled by vendor and
// status ("success" or "failure").
func (m *Metrics) Deliveries() *prometheus.CounterVec { return m.deliveries }

// RateLimited returns the counter of attempts rejected by the daily limit.
func (m *Metrics) RateLimited() prometheus.Counter { return m.rateLimited }

// Exhausted returns the counter of passes where no channel delivered.
func (m *Metrics) Exhausted() prometheus.Counter { return m.exhausted }

func (m *Metrics) recordDelivery(vendor string, success bool) {
	if m == nil {
		return
	}
	status := "failure"
	if success {
		status = "success"
	}
	m.deliveries.WithLabelValues(vendor, status).Inc()
}

func (m *Metrics) recordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

func (m *Metrics) recordExhausted() {
	if m == nil {
		return
	}
	m.exhausted.Inc()
}
