// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • Defaults are named constants; no globals are mutated.
//   • newGenConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • rng            = nil   (Generate seeds a local stream)
//   • majorityValue  = unset (per flavor: 1 for sorted families, 42 for heavy,
//                             drawn from [0,valueRange) for random)
//   • valueRange     = 100
//   • majorityChance = 0.7
//   • heavyRatio     = 0.8
//   • swapRatio      = 0.05

package dataset

import (
	"math/rand"
)

// genConfig aggregates all knobs used by the flavor generators.
// It is passed by value to generators.
type genConfig struct {
	// RNG for stochastic choices; nil means "seed a local stream".
	rng *rand.Rand

	// Majority value override; only honored when majoritySet is true.
	majorityValue int
	majoritySet   bool

	valueRange     int     // random flavor: values drawn from [0,valueRange)
	majorityChance float64 // random flavor: probability of planting a majority
	heavyRatio     float64 // majority-heavy: share of majority positions
	swapRatio      float64 // nearly-sorted: swaps per element
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultValueRange     = 100
	defaultMajorityChance = 0.7
	defaultHeavyRatio     = 0.8
	defaultSwapRatio      = 0.05

	defaultSortedMajority = 1  // sorted / reverse-sorted / nearly-sorted
	defaultHeavyMajority  = 42 // majority-heavy

	heavyFillerBase  = 1000 // majority-heavy filler offset from the majority value
	heavyFillerRange = 1000 // majority-heavy filler spread
)

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:            nil,
		valueRange:     defaultValueRange,
		majorityChance: defaultMajorityChance,
		heavyRatio:     defaultHeavyRatio,
		swapRatio:      defaultSwapRatio,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// majorityOr returns the configured majority value or def.
func (c genConfig) majorityOr(def int) int {
	if c.majoritySet {
		return c.majorityValue
	}
	return def
}
