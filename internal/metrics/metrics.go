// Package metrics exports solver activity as Prometheus metrics.
//
// A Recorder implements tsp.Hooks and owns a dedicated registry, so several
// recorders (one per test, say) never collide. The CLI is short-lived, so
// metrics are published by writing the node-exporter text-file format rather
// than by serving /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/katalvlaran/subtour/subtour"
	"github.com/katalvlaran/subtour/tsp"
)

const namespace = "subtour"

// Recorder collects per-run solver metrics.
type Recorder struct {
	registry *prometheus.Registry

	Solves       *prometheus.CounterVec
	Iterations   prometheus.Counter
	Forbidden    prometheus.Counter
	BrokenChains prometheus.Counter
	Subtours     prometheus.Gauge
	Cities       prometheus.Gauge
	TourLength   prometheus.Gauge
	Duration     prometheus.Histogram
}

var _ tsp.Hooks = (*Recorder)(nil)

// NewRecorder builds a Recorder on a fresh registry. withRuntime also
// registers the Go and process collectors.
func NewRecorder(withRuntime bool) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "solves_total", Help: "Solver runs by terminal state."},
			[]string{"state"},
		),
		Iterations: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "iterations_total", Help: "Assignment iterations executed."},
		),
		Forbidden: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "forbidden_edges_total", Help: "Edges raised to the forbidden cost."},
		),
		BrokenChains: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "broken_chains_total", Help: "Iterations whose successor walk did not close."},
		),
		Subtours: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "subtours", Help: "Subtours in the most recent step."},
		),
		Cities: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "cities", Help: "Cities in the most recent run."},
		),
		TourLength: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tour_length", Help: "Length of the last converged tour."},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "solve_duration_seconds", Help: "Wall time per solver run.", Buckets: prometheus.DefBuckets},
		),
	}
	r.registry.MustRegister(r.Solves, r.Iterations, r.Forbidden, r.BrokenChains, r.Subtours, r.Cities, r.TourLength, r.Duration)
	if withRuntime {
		r.registry.MustRegister(collectors.NewGoCollector())
		r.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return r
}

// Registry exposes the recorder's registry as a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// OnSolveStart records the instance size.
func (r *Recorder) OnSolveStart(n int) { r.Cities.Set(float64(n)) }

// OnStep counts the iteration and tracks the subtour count.
func (r *Recorder) OnStep(step tsp.Step) {
	r.Iterations.Inc()
	r.Subtours.Set(float64(len(step.Subtours)))
}

// OnForbid counts forbidden edges.
func (r *Recorder) OnForbid(int, subtour.Edge) { r.Forbidden.Inc() }

// OnBrokenChain counts broken walks.
func (r *Recorder) OnBrokenChain(int, error) { r.BrokenChains.Inc() }

// OnSolveComplete records the outcome.
func (r *Recorder) OnSolveComplete(state tsp.State, _ int, tourLength float64, elapsed time.Duration) {
	r.Solves.WithLabelValues(state.String()).Inc()
	r.Duration.Observe(elapsed.Seconds())
	if state == tsp.Converged {
		r.TourLength.Set(tourLength)
	}
}

// WriteTextfile writes every registered metric to path in the text
// exposition format. The write is atomic (temp file + rename).
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
