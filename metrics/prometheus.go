package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/majority/majority"
)

// DefaultNamespace is used by NewPrometheus when namespace is empty.
const DefaultNamespace = "majority"

// Prometheus publishes records as Prometheus metrics, labelled by input type.
//
// Registered series (namespace "majority" by default, subsystem "vote"):
//   - runs_total{input_type}
//   - array_accesses_total{input_type}
//   - comparisons_total{input_type}
//   - candidate_assignments_total{input_type}
//   - execution_seconds{input_type} (histogram)
type Prometheus struct {
	runs        *prometheus.CounterVec
	accesses    *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	assignments *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// Compile-time assertion that Prometheus implements Observer.
var _ Observer = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer if nil).
//
// Returns an error if any collector is already registered under the same name.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	labels := []string{"input_type"}
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vote",
			Name:      "runs_total",
			Help:      "Total instrumented majority-vote calls.",
		}, labels),
		accesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vote",
			Name:      "array_accesses_total",
			Help:      "Element reads across candidate selection and verification.",
		}, labels),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vote",
			Name:      "comparisons_total",
			Help:      "Equality checks against the candidate.",
		}, labels),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vote",
			Name:      "candidate_assignments_total",
			Help:      "Candidate (re)assignments during selection.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vote",
			Name:      "execution_seconds",
			Help:      "Wall time of instrumented calls in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), // 100ns .. ~0.4s
		}, labels),
	}

	for _, c := range []prometheus.Collector{p.runs, p.accesses, p.comparisons, p.assignments, p.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Observe implements Observer.
func (p *Prometheus) Observe(m majority.Metrics) {
	label := m.InputType
	p.runs.WithLabelValues(label).Inc()
	p.accesses.WithLabelValues(label).Add(float64(m.ArrayAccesses))
	p.comparisons.WithLabelValues(label).Add(float64(m.Comparisons))
	p.assignments.WithLabelValues(label).Add(float64(m.MemoryAllocations))
	p.duration.WithLabelValues(label).Observe(m.Elapsed.Seconds())
}
