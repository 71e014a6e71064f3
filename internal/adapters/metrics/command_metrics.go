package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CommandMetricsCollector times economy commands and ledger queries sent over the mediator
type CommandMetricsCollector struct {
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	inFlight        prometheus.Gauge
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		// Economy commands take the engine lock; journal writes hit the database
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "request_duration_seconds",
				Help:      "Time spent handling a mediator request",
				Buckets:   []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.025, 0.1, 0.5},
			},
			[]string{"request", "kind", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "mediator",
				Name:      "requests_total",
				Help:      "Mediator requests by name, kind and status",
			},
			[]string{"request", "kind", "status"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "mediator",
			Name:      "requests_in_flight",
			Help:      "Requests currently being handled",
		}),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	return register(c.requestDuration, c.requestsTotal, c.inFlight)
}

// RecordRequest records one handled request. An error from the handler is
// "error"; a handled request is "success" even when the engine refused it.
func (c *CommandMetricsCollector) RecordRequest(name, kind string, seconds float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	c.requestDuration.WithLabelValues(name, kind, status).Observe(seconds)
	c.requestsTotal.WithLabelValues(name, kind, status).Inc()
}
