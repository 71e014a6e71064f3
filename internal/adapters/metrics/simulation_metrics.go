package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SimulationMetricsCollector records per-tick engine activity
type SimulationMetricsCollector struct {
	tickDuration   prometheus.Histogram
	ticksTotal     prometheus.Counter
	entities       prometheus.Gauge
	fractures      *prometheus.CounterVec
	pickups        *prometheus.CounterVec
	requests       *prometheus.CounterVec
	jobsCompleted  *prometheus.CounterVec
	refinedUnits   *prometheus.CounterVec
	creditsBalance prometheus.Gauge
}

// NewSimulationMetricsCollector creates a new simulation metrics collector
func NewSimulationMetricsCollector() *SimulationMetricsCollector {
	return &SimulationMetricsCollector{
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent inside one simulation tick",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.002, 0.005, 0.01, 0.016, 0.033},
		}),
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "ticks_total",
			Help:      "Total number of simulation ticks",
		}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "entities",
			Help:      "Live entities in the world store after the last tick",
		}),
		fractures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "asteroid_fractures_total",
			Help:      "Destroyed asteroids by tier and mineral",
		}, []string{"tier", "mineral"}),
		pickups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "loot_collected_total",
			Help:      "Raw ore units picked up by mineral",
		}, []string{"mineral"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "economy_requests_total",
			Help:      "Economy operations by name and result",
		}, []string{"operation", "result"}),
		jobsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "refining_jobs_completed_total",
			Help:      "Completed refining jobs by mineral",
		}, []string{"mineral"}),
		refinedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "refined_units_total",
			Help:      "Refined units credited to the refinery account by mineral",
		}, []string{"mineral"}),
		creditsBalance: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "player_credits_balance",
			Help:      "Current player credits",
		}),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationMetricsCollector) Register() error {
	return register(
		c.tickDuration,
		c.ticksTotal,
		c.entities,
		c.fractures,
		c.pickups,
		c.requests,
		c.jobsCompleted,
		c.refinedUnits,
		c.creditsBalance,
	)
}

func (c *SimulationMetricsCollector) RecordTick(d time.Duration, entities int) {
	c.tickDuration.Observe(d.Seconds())
	c.ticksTotal.Inc()
	c.entities.Set(float64(entities))
}

func (c *SimulationMetricsCollector) RecordFracture(tier int, mineral string) {
	c.fractures.WithLabelValues(strconv.Itoa(tier), mineral).Inc()
}

func (c *SimulationMetricsCollector) RecordPickup(mineral string) {
	c.pickups.WithLabelValues(mineral).Inc()
}

func (c *SimulationMetricsCollector) RecordRequest(operation string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "refused"
	}
	c.requests.WithLabelValues(operation, result).Inc()
}

func (c *SimulationMetricsCollector) RecordJobCompleted(mineral string, quantity int) {
	c.jobsCompleted.WithLabelValues(mineral).Inc()
	c.refinedUnits.WithLabelValues(mineral).Add(float64(quantity))
}

func (c *SimulationMetricsCollector) RecordCredits(credits int) {
	c.creditsBalance.Set(float64(credits))
}
