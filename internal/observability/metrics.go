package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ETo computation pipeline.
type Metrics struct {
	ComputeRequests *prometheus.CounterVec // labels: formula, outcome={success,error,fallback}

	// Station fetch metrics.
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error}
	FetchDuration prometheus.Histogram
	FetchCache    *prometheus.CounterVec // labels: result={hit,miss}

	ResultsLogged prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ComputeRequests,
		m.FetchRequests,
		m.FetchDuration,
		m.FetchCache,
		m.ResultsLogged,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ComputeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eto",
			Name:      "compute_requests_total",
			Help:      "ETo evaluations by formula and outcome.",
		}, []string{"formula", "outcome"}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eto",
			Name:      "fetch_requests_total",
			Help:      "Station page retrievals by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "eto",
			Name:      "fetch_duration_seconds",
			Help:      "Station page retrieval duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}),
		FetchCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "eto",
			Name:      "fetch_cache_total",
			Help:      "Snapshot cache lookups by result.",
		}, []string{"result"}),
		ResultsLogged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eto",
			Name:      "results_logged_total",
			Help:      "Results appended to the delimited log file.",
		}),
	}
}
