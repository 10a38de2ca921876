package batch

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts batch activity.
type Metrics struct {
	Lanes    prometheus.Counter     // Lanes loaded.
	Ticks    prometheus.Counter     // Ticks executed.
	Overflow *prometheus.CounterVec // Capacity overflow events, by kind.
}

// NewMetrics creates the batch counters, registering them if reg is not nil.
func NewMetrics(reg prometheus.Registerer) (m *Metrics) {
	m = &Metrics{
		Lanes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typo",
			Subsystem: "batch",
			Name:      "lanes_total",
			Help:      "Lanes loaded into batches.",
		}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "typo",
			Subsystem: "batch",
			Name:      "ticks_total",
			Help:      "Lockstep ticks executed.",
		}),
		Overflow: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "typo",
			Subsystem: "batch",
			Name:      "overflow_total",
			Help:      "Insertions or fragments dropped at lane capacity.",
		}, []string{"kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.Lanes, m.Ticks, m.Overflow)
	}

	return
}

func (m *Metrics) overflow(flag Overflow) {
	if m == nil {
		return
	}
	m.Overflow.WithLabelValues(flag.String()).Inc()
}
