// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// api.go - public entry point for the dataset package.
//
// Design contract:
//   • One dispatcher: Generate(flavor, n, seed, opts...). Flavor bodies live in impl_*.go.
//   • Same (flavor, n, seed, opts) ⇒ identical slice.
//   • Never panic; return sentinel errors wrapped with the method name.

package dataset

// MethodGenerate is the context prefix used for Generate errors.
const MethodGenerate = "Generate"

// generator fills a length-n slice for one flavor.
type generator func(n int, cfg genConfig) []int

// Generate returns a deterministic length-n input of the given flavor.
//
// RNG policy: a stream supplied via WithRand/WithSeed wins; otherwise a local
// stream seeded with seed is used.
//
// Errors:
//   - ErrBadSize       if n < 0.
//   - ErrUnknownFlavor if f is not in Flavors().
//
// Complexity: O(n) time, O(n) memory.
func Generate(f Flavor, n int, seed int64, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, wrapf(MethodGenerate, ErrBadSize, "n=%d", n)
	}

	var gen generator
	switch f {
	case Random:
		gen = genRandom
	case Sorted:
		gen = genSorted
	case ReverseSorted:
		gen = genReverseSorted
	case NearlySorted:
		gen = genNearlySorted
	case MajorityHeavy:
		gen = genMajorityHeavy
	default:
		return nil, wrapf(MethodGenerate, ErrUnknownFlavor, "%q", string(f))
	}

	cfg := newGenConfig(opts...)
	cfg.rng = rngFrom(cfg, seed)

	if n == 0 {
		return []int{}, nil
	}

	return gen(n, cfg), nil
}

// MustGenerate is like Generate but panics on error. Intended for tests and
// examples with literal arguments.
func MustGenerate(f Flavor, n int, seed int64, opts ...Option) []int {
	out, err := Generate(f, n, seed, opts...)
	if err != nil {
		panic(err)
	}
	return out
}
