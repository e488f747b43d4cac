// Package oracle holds the naive quadratic majority baseline used to
// cross-check the linear algorithm in tests and in the benchmark harness.
// It is not meant for production use.
package oracle

// Reference returns the first element of seq whose exact occurrence count
// exceeds ⌊n/2⌋, or ok=false if none does.
//
// Complexity: O(n²) time, O(1) additional space.
func Reference[T comparable](seq []T) (T, bool) {
	var zero T
	threshold := len(seq) / 2
	for i := range seq {
		count := 0
		for j := range seq {
			if seq[i] == seq[j] {
				count++
			}
		}
		if count > threshold {
			return seq[i], true
		}
	}

	return zero, false
}
