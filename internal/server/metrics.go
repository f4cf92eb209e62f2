package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the Prometheus collectors of the HTTP adapter.
type Metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "normdist",
			Name:      "renders_total",
			Help:      "Number of rendered curves.",
		}, []string{"format", "error"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "normdist",
			Name:      "render_duration_seconds",
			Help:      "Time spent sampling and mapping one curve.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 8),
		}, []string{"format"}),
	}
	reg.MustRegister(m.renders, m.duration)
	return m
}

func (m *Metrics) observe(format string, err error, took time.Duration) {
	m.renders.WithLabelValues(format, boolLabel(err != nil)).Inc()
	m.duration.WithLabelValues(format).Observe(took.Seconds())
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
