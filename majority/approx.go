package majority

import (
	"math"
	"math/rand"
)

// Approximate estimates the majority element from a random sample.
//
// This is a heuristic, not an answer to the majority question: it draws
// opts.SampleSize positions uniformly with replacement, runs the candidate
// pass over the sample, and accepts the candidate when its share of the
// sample is strictly greater than opts.Threshold. It has a non-zero false
// positive and false negative rate against FindMajority and is never used by
// the exact operations.
//
// An empty seq yields ok=false with a nil error.
//
// Errors:
//   - ErrNilRand       if rng is nil.
//   - ErrBadSampleSize if opts.SampleSize < 1.
//   - ErrBadThreshold  if opts.Threshold is NaN or outside [0,1).
//
// Complexity: O(k) time for k = SampleSize, O(1) additional space.
func Approximate[T comparable](seq []T, rng *rand.Rand, opts ApproxOptions) (T, bool, error) {
	var zero T
	if rng == nil {
		return zero, false, ErrNilRand
	}
	if opts.SampleSize < 1 {
		return zero, false, ErrBadSampleSize
	}
	if math.IsNaN(opts.Threshold) || opts.Threshold < 0 || opts.Threshold >= 1 {
		return zero, false, ErrBadThreshold
	}
	if len(seq) == 0 {
		return zero, false, nil
	}

	// Both passes replay the same sample from one derived seed.
	seed := rng.Int63()
	pick := rand.New(rand.NewSource(seed))

	var (
		candidate T
		count     int
	)
	for i := 0; i < opts.SampleSize; i++ {
		x := seq[pick.Intn(len(seq))]
		if count == 0 {
			candidate, count = x, 1
		} else if x == candidate {
			count++
		} else {
			count--
		}
	}

	// Count the candidate over the very same sample.
	pick = rand.New(rand.NewSource(seed))
	hits := 0
	for i := 0; i < opts.SampleSize; i++ {
		if seq[pick.Intn(len(seq))] == candidate {
			hits++
		}
	}

	if float64(hits)/float64(opts.SampleSize) > opts.Threshold {
		return candidate, true, nil
	}

	return zero, false, nil
}
