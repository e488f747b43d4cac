package majority

import (
	"errors"
	"time"
)

// Default tags recorded in Metrics when no option overrides them.
const (
	// DefaultAlgorithm is the algorithm label written to every Metrics.
	DefaultAlgorithm = "Boyer-Moore Majority Vote"

	// DefaultInputType labels an input whose distribution is unknown.
	DefaultInputType = "random"

	// AssumeExistsInputType labels calls made with WithAssumeExists.
	AssumeExistsInputType = "guaranteed-majority"
)

// Sentinel errors returned by Approximate. The exact operations never fail.
var (
	// ErrNilRand indicates that Approximate was called without a random source.
	ErrNilRand = errors.New("majority: rand source is nil")

	// ErrBadSampleSize indicates ApproxOptions.SampleSize < 1.
	ErrBadSampleSize = errors.New("majority: sample size must be positive")

	// ErrBadThreshold indicates ApproxOptions.Threshold outside [0,1).
	ErrBadThreshold = errors.New("majority: threshold must be in [0,1)")
)

// Metrics is the observation record of a single instrumented call.
//
// It is advisory only: nothing in the correctness contract depends on it.
// A new value is produced by every Measure call; callers that want a history
// keep it themselves (see metrics.Collector).
//
// Fields:
//   - Algorithm         - algorithm label.
//   - InputSize         - len(seq).
//   - InputType         - caller supplied distribution label.
//   - ArrayAccesses     - element reads across both phases.
//   - Comparisons       - equality checks against the candidate.
//   - MemoryAllocations - candidate (re)assignments during Phase 1.
//   - Elapsed           - wall time of the call.
type Metrics struct {
	Algorithm         string
	InputSize         int
	InputType         string
	ArrayAccesses     int64
	Comparisons       int64
	MemoryAllocations int64
	Elapsed           time.Duration
}

// ExecutionTimeNs returns Elapsed in nanoseconds.
func (m Metrics) ExecutionTimeNs() int64 { return m.Elapsed.Nanoseconds() }

// ExecutionTimeMs returns Elapsed in (fractional) milliseconds.
func (m Metrics) ExecutionTimeMs() float64 {
	return float64(m.Elapsed.Nanoseconds()) / float64(time.Millisecond)
}

// Options configures an instrumented call.
//
// InputType    – label copied into Metrics.InputType.
// Algorithm    – label copied into Metrics.Algorithm.
// AssumeExists – skip the verification pass (see FindMajorityAssumeExists).
// Now          – clock used for Elapsed; time.Now unless overridden.
type Options struct {
	InputType    string
	Algorithm    string
	AssumeExists bool
	Now          func() time.Time

	inputTypeSet bool
}

// Option represents a functional option for Measure.
type Option func(*Options)

// WithInputType sets the input distribution label recorded in Metrics.
func WithInputType(label string) Option {
	return func(o *Options) {
		o.InputType = label
		o.inputTypeSet = true
	}
}

// WithAlgorithm overrides the algorithm label recorded in Metrics.
// Panics on an empty label.
func WithAlgorithm(name string) Option {
	if name == "" {
		panic("majority: WithAlgorithm(\"\")")
	}
	return func(o *Options) {
		o.Algorithm = name
	}
}

// WithAssumeExists skips the verification pass. The input type label
// defaults to AssumeExistsInputType unless WithInputType is also given.
func WithAssumeExists() Option {
	return func(o *Options) {
		o.AssumeExists = true
	}
}

// WithClock replaces time.Now for Elapsed measurement. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("majority: WithClock(nil)")
	}
	return func(o *Options) {
		o.Now = now
	}
}

// DefaultOptions returns the options used when Measure gets none.
//
// Defaults:
//   - InputType:    DefaultInputType.
//   - Algorithm:    DefaultAlgorithm.
//   - AssumeExists: false (verification pass runs).
//   - Now:          time.Now.
func DefaultOptions() Options {
	return Options{
		InputType: DefaultInputType,
		Algorithm: DefaultAlgorithm,
		Now:       time.Now,
	}
}

// ApproxOptions configures Approximate.
//
// SampleSize – number of positions drawn (with replacement). Must be ≥ 1.
// Threshold  – the sampled candidate is accepted when its share of the
// sample is strictly greater than Threshold. Must be in [0,1).
type ApproxOptions struct {
	SampleSize int
	Threshold  float64
}

// DefaultApproxOptions returns a 64-sample, strict-majority configuration.
func DefaultApproxOptions() ApproxOptions {
	return ApproxOptions{
		SampleSize: 64,
		Threshold:  0.5,
	}
}
