package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the directory service.
type Metrics struct {
	// HTTP transport metrics.
	HTTPRequests *prometheus.CounterVec   // labels: method, path, status
	HTTPDuration *prometheus.HistogramVec // labels: method, path

	// OsmImports counts import attempts by outcome:
	// success, node_not_found, missing_fields, duplicate_name, error.
	OsmImports *prometheus.CounterVec

	// PosWrites counts store write operations by op: create, update, clear.
	PosWrites *prometheus.CounterVec
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campuscoffee",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campuscoffee",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by method and route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "path"}),
		OsmImports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campuscoffee",
			Name:      "osm_imports_total",
			Help:      "OSM node import attempts by outcome.",
		}, []string{"outcome"}),
		PosWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campuscoffee",
			Name:      "pos_writes_total",
			Help:      "POS store writes by operation.",
		}, []string{"op"}),
	}

	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.OsmImports,
		m.PosWrites,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics so repeated calls
// across tests do not trip duplicate registration.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "campuscoffee", Name: "http_requests_total"}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "campuscoffee", Name: "http_request_duration_seconds"}, []string{"method", "path"}),
		OsmImports:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "campuscoffee", Name: "osm_imports_total"}, []string{"outcome"}),
		PosWrites:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "campuscoffee", Name: "pos_writes_total"}, []string{"op"}),
	}
}
