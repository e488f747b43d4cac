// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// options.go - functional options for the dataset package.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package dataset

import (
	"math/rand"
)

// Option customizes a generator by mutating genConfig before use.
type Option func(*genConfig)

// WithRand provides an explicit RNG shared across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new RNG seeded with seed, overriding Generate's seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMajorityValue fixes the planted majority value for every flavor.
func WithMajorityValue(v int) Option {
	return func(c *genConfig) {
		c.majorityValue = v
		c.majoritySet = true
	}
}

// WithValueRange sets the value range [0,k) of the random flavor. Panics if k < 2,
// since filler values must differ from the majority value.
func WithValueRange(k int) Option {
	if k < 2 {
		panic("dataset: WithValueRange(k<2)")
	}
	return func(c *genConfig) {
		c.valueRange = k
	}
}

// WithMajorityChance sets the probability that the random flavor plants a
// majority. Panics outside [0,1].
func WithMajorityChance(p float64) Option {
	if p < 0 || p > 1 {
		panic("dataset: WithMajorityChance(p∉[0,1])")
	}
	return func(c *genConfig) {
		c.majorityChance = p
	}
}

// WithHeavyRatio sets the share of majority positions for majority-heavy.
// Panics outside (0,1].
func WithHeavyRatio(r float64) Option {
	if r <= 0 || r > 1 {
		panic("dataset: WithHeavyRatio(r∉(0,1])")
	}
	return func(c *genConfig) {
		c.heavyRatio = r
	}
}

// WithSwapRatio sets swaps-per-element for nearly-sorted. Panics outside [0,1].
func WithSwapRatio(r float64) Option {
	if r < 0 || r > 1 {
		panic("dataset: WithSwapRatio(r∉[0,1])")
	}
	return func(c *genConfig) {
		c.swapRatio = r
	}
}
