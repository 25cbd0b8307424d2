package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry so tests can build as many instances
// as they like without fighting over the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	Handled  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	handled := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_rpc_handled_total",
			Help: "Completed RPCs by full method and status code.",
		},
		[]string{"method", "code"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "team_rpc_duration_seconds",
			Help:    "RPC handling time by full method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	registry.MustRegister(handled, duration)

	return &Metrics{
		registry: registry,
		Handled:  handled,
		Duration: duration,
	}
}

// Handler serves the registry for the /metrics sidecar.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
