package majority

// counters accumulates operation counts for one call. The uninstrumented
// entry points pass a throwaway value so there is a single scan implementation.
type counters struct {
	accesses    int64
	comparisons int64
	allocations int64
}

// FindMajority returns the element that occupies more than ⌊n/2⌋ positions
// of seq, or ok=false if there is none (including the empty sequence).
//
// It performs one candidate-selection pass and at most one verification pass,
// which exits early once the running count exceeds ⌊n/2⌋.
//
// Complexity: O(n) time, O(1) additional space.
func FindMajority[T comparable](seq []T) (T, bool) {
	var c counters
	return find(seq, false, &c)
}

// FindMajorityAssumeExists runs the candidate-selection pass only.
//
// Precondition: seq contains a strict majority element. If it does not, the
// returned element is unspecified (any element of seq may come back), but
// ok is still true. ok is false only for an empty sequence.
//
// Complexity: O(n) time, O(1) additional space, a single pass.
func FindMajorityAssumeExists[T comparable](seq []T) (T, bool) {
	var c counters
	return find(seq, true, &c)
}

// HasMajority reports whether seq has a strict majority element.
func HasMajority[T comparable](seq []T) bool {
	_, ok := FindMajority(seq)
	return ok
}

// Measure runs the majority vote with operation counting and timing.
// Without options it behaves like FindMajority; WithAssumeExists makes it
// behave like FindMajorityAssumeExists.
//
// The returned Metrics belong to this call only.
func Measure[T comparable](seq []T, opts ...Option) (T, bool, Metrics) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.AssumeExists && !cfg.inputTypeSet {
		cfg.InputType = AssumeExistsInputType
	}

	m := Metrics{
		Algorithm: cfg.Algorithm,
		InputSize: len(seq),
		InputType: cfg.InputType,
	}

	var c counters
	start := cfg.Now()
	v, ok := find(seq, cfg.AssumeExists, &c)
	m.Elapsed = cfg.Now().Sub(start)

	m.ArrayAccesses = c.accesses
	m.Comparisons = c.comparisons
	m.MemoryAllocations = c.allocations

	return v, ok, m
}

// find is the shared implementation behind every exact entry point.
func find[T comparable](seq []T, assumeExists bool, c *counters) (T, bool) {
	var zero T
	if len(seq) == 0 {
		return zero, false
	}

	candidate := selectCandidate(seq, c)
	if assumeExists {
		return candidate, true
	}
	if !verify(seq, candidate, c) {
		return zero, false
	}

	return candidate, true
}

// selectCandidate is Phase 1. seq must be non-empty.
func selectCandidate[T comparable](seq []T, c *counters) T {
	var (
		candidate T
		count     int
	)
	for i := range seq {
		c.accesses++
		x := seq[i]

		if count == 0 {
			candidate = x
			c.allocations++
			count = 1
			continue
		}

		c.comparisons++
		if x == candidate {
			count++
		} else {
			count--
		}
	}

	return candidate
}

// verify is Phase 2: candidate must occur more than ⌊n/2⌋ times.
func verify[T comparable](seq []T, candidate T, c *counters) bool {
	threshold := len(seq) / 2
	count := 0
	for i := range seq {
		c.accesses++
		c.comparisons++
		if seq[i] == candidate {
			count++
			if count > threshold {
				return true
			}
		}
	}

	return count > threshold
}
