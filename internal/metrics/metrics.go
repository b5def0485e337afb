package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK         = "ok"
	StatusInvalid    = "invalid_input"
	StatusDivergence = "divergence"
)

// Registry holds the simulator metrics. It is separate from the default
// registry so a textfile dump only contains simulator series.
var Registry = prometheus.NewRegistry()

var (
	// Simulations counts simulator runs by strategy and status
	Simulations = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "overpay_simulations_total",
			Help: "Number of amortization simulations run",
		},
		[]string{"strategy", "status"},
	)

	// ScheduleMonths records the payoff length of successful simulations
	ScheduleMonths = promauto.With(Registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "overpay_schedule_months",
			Help:    "Months until payoff per simulation",
			Buckets: prometheus.LinearBuckets(60, 60, 10),
		},
		[]string{"strategy"},
	)

	// Comparisons counts strategy comparisons
	Comparisons = promauto.With(Registry).NewCounter(
		prometheus.CounterOpts{
			Name: "overpay_comparisons_total",
			Help: "Number of baseline plus strategy comparisons run",
		},
	)
)

// ObserveSimulation records one simulator run.
func ObserveSimulation(strategy, status string, months int) {
	Simulations.WithLabelValues(strategy, status).Inc()
	if status == StatusOK {
		ScheduleMonths.WithLabelValues(strategy).Observe(float64(months))
	}
}

// WriteTextfile dumps all simulator metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
