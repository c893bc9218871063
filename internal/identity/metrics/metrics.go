package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for ParseOutcome besides the parse error kinds.
const (
	ResultOK         = "ok"
	ResultBadRequest = "bad_request"
)

// Metrics provides observability for the identity module.
type Metrics struct {
	// Parse outcomes by operation and result: ok, bad_request or the parse
	// error kind.
	ParseOutcome *prometheus.CounterVec

	// Successfully parsed coordination numbers.
	CoordinationNumbers prometheus.Counter

	// Latency of a single parse, including audit emission.
	ParseLatency *prometheus.HistogramVec
}

// New creates the identity metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParseOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "personnummer_parse_outcomes_total",
			Help: "Identity number parse outcomes by operation and result",
		}, []string{"operation", "result"}),

		CoordinationNumbers: factory.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_coordination_numbers_total",
			Help: "Parsed identity numbers that were coordination numbers",
		}),

		ParseLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personnummer_parse_duration_seconds",
			Help:    "Duration of identity number operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}),
	}
}

// IncrementOutcome records the result of an operation.
func (m *Metrics) IncrementOutcome(operation, result string) {
	if m != nil {
		m.ParseOutcome.WithLabelValues(operation, result).Inc()
	}
}

func (m *Metrics) IncrementCoordinationNumber() {
	if m != nil {
		m.CoordinationNumbers.Inc()
	}
}

// ObserveLatency records how long an operation took.
func (m *Metrics) ObserveLatency(operation string, d time.Duration) {
	if m != nil {
		m.ParseLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
