// Package metrics exposes Prometheus collectors for simulation traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "livestock"

// Recorder observes simulation outcomes.
type Recorder interface {
	ObserveSimulation(level, outcome string, elapsed time.Duration)
	ObserveComparison(breeds int)
}

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry    *prometheus.Registry
	simulations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	comparisons prometheus.Histogram
}

// New registers the simulation collectors plus Go and process collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lactation_simulations_total",
			Help:      "Lactation simulations by management level and outcome.",
		}, []string{"management_level", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lactation_simulation_duration_seconds",
			Help:      "Time spent running the lactation engine.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}, []string{"management_level"}),
		comparisons: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "breed_comparison_size",
			Help:      "Number of breeds per comparison request.",
			Buckets:   []float64{2, 3, 4, 5, 8, 12, 20},
		}),
	}

	m.registry.MustRegister(
		m.simulations,
		m.duration,
		m.comparisons,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSimulation counts one simulation and records its duration.
func (m *Metrics) ObserveSimulation(level, outcome string, elapsed time.Duration) {
	m.simulations.WithLabelValues(level, outcome).Inc()
	m.duration.WithLabelValues(level).Observe(elapsed.Seconds())
}

// ObserveComparison records the size of a comparison batch.
func (m *Metrics) ObserveComparison(breeds int) {
	m.comparisons.Observe(float64(breeds))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

type nopRecorder struct{}

func (nopRecorder) ObserveSimulation(string, string, time.Duration) {}
func (nopRecorder) ObserveComparison(int)                           {}

// Nop returns a Recorder that discards observations.
func Nop() Recorder { return nopRecorder{} }
