package http

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the server's Prometheus collectors on a private
// registry, so several handlers can coexist in one process.
type metrics struct {
	registry      *prometheus.Registry
	solves        *prometheus.CounterVec
	solveErrors   prometheus.Counter
	wordsFound    prometheus.Counter
	solveDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lexigrid_solves_total",
				Help: "Total number of successful solves",
			},
			[]string{"strategy"},
		),
		solveErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexigrid_solve_errors_total",
				Help: "Total number of failed solve requests",
			},
		),
		wordsFound: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lexigrid_words_found_total",
				Help: "Total number of words found across all solves",
			},
		),
		solveDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "lexigrid_solve_duration_seconds",
				Help: "Duration of solve calls",
			},
		),
	}
	m.registry.MustRegister(m.solves, m.solveErrors, m.wordsFound, m.solveDuration)
	return m
}
