// Package metrics holds the Prometheus instruments for job preparation and
// g16 runs. gauss is a short-lived batch command, so instead of serving
// /metrics the collectors are written to a node_exporter textfile.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every gauss collector.
var Registry = prometheus.NewRegistry()

var (
	Validations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gauss_validations_total",
			Help: "Job files validated, by result (valid, invalid, source_error).",
		}, []string{"result"})

	Renders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gauss_renders_total",
			Help: "Inputs rendered, by layout (cpu, gpu).",
		}, []string{"layout"})

	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gauss_runs_total",
			Help: "g16 runs, by outcome (success, failed, error).",
		}, []string{"outcome"})

	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gauss_run_duration_seconds",
			Help:    "Wall-clock duration of g16 runs.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		})
)

func init() {
	Registry.MustRegister(
		Validations,
		Renders,
		Runs,
		RunDuration,
	)
}

// Layout returns the Renders label for a job.
func Layout(gpu bool) string {
	if gpu {
		return "gpu"
	}
	return "cpu"
}

// WriteTextfile writes the current values in the Prometheus text format to
// path. An empty path is a no-op.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, Registry)
}
