package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels for RunsTotal.
const (
	OutcomeReachable   = "reachable"
	OutcomeUnreachable = "unreachable"
	OutcomeTimeout     = "timeout"
	OutcomeError       = "error"
)

// Metrics holds the harness collectors on a private registry, so several
// runners (and tests) never collide on the global one.
type Metrics struct {
	Registry *prometheus.Registry

	RunSeconds      *prometheus.HistogramVec
	PeakBytes       *prometheus.HistogramVec
	VisitedNodes    *prometheus.CounterVec
	RunsTotal       *prometheus.CounterVec
	MismatchesTotal prometheus.Counter
}

// NewMetrics creates and registers the harness collectors together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RunSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spbench",
			Name:      "run_seconds",
			Help:      "Wall-clock time of one engine call",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"algorithm"}),
		PeakBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "spbench",
			Name:      "peak_bytes",
			Help:      "Heap high-water mark above baseline during one engine call",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 12),
		}, []string{"algorithm"}),
		VisitedNodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spbench",
			Name:      "visited_nodes_total",
			Help:      "Nodes settled across all runs",
		}, []string{"algorithm"}),
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "spbench",
			Name:      "runs_total",
			Help:      "Engine calls by outcome",
		}, []string{"algorithm", "outcome"}),
		MismatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "spbench",
			Name:      "mismatches_total",
			Help:      "Cross-engine disagreements",
		}),
	}
	m.Registry.MustRegister(
		m.RunSeconds, m.PeakBytes, m.VisitedNodes, m.RunsTotal, m.MismatchesTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Observe records one run. A nil receiver is a no-op.
func (m *Metrics) Observe(r Run) {
	if m == nil {
		return
	}
	algo := r.Algorithm
	m.RunsTotal.WithLabelValues(algo, r.Outcome()).Inc()
	if r.TimedOut || r.Err != nil {
		return
	}
	m.RunSeconds.WithLabelValues(algo).Observe(r.Elapsed.Seconds())
	m.PeakBytes.WithLabelValues(algo).Observe(float64(r.PeakBytes))
	m.VisitedNodes.WithLabelValues(algo).Add(float64(r.Visited))
}

// ObserveMismatch counts one cross-engine disagreement.
func (m *Metrics) ObserveMismatch() {
	if m == nil {
		return
	}
	m.MismatchesTotal.Inc()
}

// WriteFile writes the registry in the Prometheus text format, for the
// node_exporter textfile collector.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
