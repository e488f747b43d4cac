// Package dataset generates synthetic integer inputs for exercising the
// majority vote under different distributions ("flavors").
//
// The flavor set is closed:
//
//   - random          - 70% of the time a shuffled input with a majority
//     value; otherwise values spread over [0,n) with no engineered majority.
//   - sorted          - ⌊n/2⌋+1 copies of the majority value, then strictly
//     increasing larger values.
//   - reverse-sorted  - strictly decreasing larger values, then ⌊n/2⌋+1
//     copies of the majority value.
//   - nearly-sorted   - sorted, then max(1, n·swapRatio) random swaps.
//   - majority-heavy  - ⌊0.8·n⌋ copies of the majority value, shuffled
//     among values that never equal it.
//
// Determinism:
//
//	Generate(f, n, seed, opts...) is a pure function of its arguments.
//	With WithRand/WithSeed the supplied stream is used instead of seed, so
//	several calls can share one stream.
//
// Errors (sentinel):
//
//   - ErrUnknownFlavor if the flavor is not one of Flavors().
//   - ErrBadSize       if n < 0.
//
// Option constructors panic on meaningless values; Generate never panics.
package dataset
