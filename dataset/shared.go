// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// shared.go - helpers shared by the flavor generators.

package dataset

import (
	"math/rand"
)

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg genConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// majorityCount is the smallest strict-majority count for length n.
func majorityCount(n int) int { return n/2 + 1 }

// shuffle performs an in-place Fisher–Yates shuffle driven by rng.
func shuffle(rng *rand.Rand, data []int) {
	for i := len(data) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
