// Package majority finds the strict majority element of a finite sequence
// with the Boyer–Moore Majority Vote algorithm.
//
// 🚀 What is a majority element?
//
//	An element that occupies strictly more than ⌊n/2⌋ positions of a
//	sequence of length n. At most one such element can exist, so the answer
//	is always unambiguous: either that element, or "no majority".
//
// ✨ Key features:
//   - FindMajority: candidate scan + verification scan, O(n) time, O(1) space
//   - FindMajorityAssumeExists: candidate scan only, for inputs that are
//     known to contain a majority
//   - Measure: the same algorithm with per-call operation counters
//     (array accesses, comparisons, candidate assignments) and timing
//   - Approximate: an explicitly approximate sampling check, never used
//     by the exact operations
//   - Generic over any comparable element type
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/majority/majority"
//
//	v, ok := majority.FindMajority([]int{3, 2, 3, 4, 3, 3, 3})
//	// v == 3, ok == true
//
//	v, ok, m := majority.Measure(data, majority.WithInputType("sorted"))
//	fmt.Println(m.ArrayAccesses, m.Comparisons, m.Elapsed)
//
// Algorithm outline:
//
//  1. Candidate selection. Keep (candidate, count), count starts at 0.
//     For each x: if count == 0 then candidate = x, count = 1;
//     else if x == candidate then count++; else count--.
//  2. Verification. Count occurrences of candidate, stopping as soon as the
//     running count exceeds ⌊n/2⌋.
//
// A true majority element survives step 1 because every decrement pairs it
// with a distinct other element, and there are fewer of those than of it.
//
// Performance:
//
//   - Time:   O(n), at most two passes
//   - Memory: O(1) additional, independent of n and of the value range
//
// Concurrency:
//
//	Every operation is a pure function of its input slice. Metrics are
//	created fresh per call and returned by value, so concurrent callers
//	never share counters. The slice must not be mutated during a call.
package majority
