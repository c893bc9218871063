package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RateLimitRejectedTotal prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RateLimitRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "personnummer_ratelimit_rejected_total",
			Help: "Total number of requests rejected by the per-IP rate limit",
		}),
	}
}

func (m *Metrics) IncrementRejected() {
	if m == nil {
		return
	}
	m.RateLimitRejectedTotal.Inc()
}
