package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// Namespace for all metrics
	namespace = "spaceminer"
	// Subsystem for simulation metrics
	subsystem = "simulation"
)

// Registry is the Prometheus registry for all metrics. It stays nil while
// metrics are disabled, and collectors then skip registration.
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry with the Go runtime and
// process collectors. Call once at startup when metrics are enabled.
func InitRegistry() *prometheus.Registry {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// register adds every collector to the registry, if there is one
func register(cs ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, c := range cs {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
