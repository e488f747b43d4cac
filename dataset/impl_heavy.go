// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// impl_heavy.go - the "majority-heavy" flavor.
//
// Model:
//   • k = ⌊n·heavyRatio⌋ copies of the majority value m (default 42).
//   • fillers m+1000+U[0,1000), never equal to m.
//   • shuffled. With the default ratio this is a strict majority for n ≥ 3.

package dataset

func genMajorityHeavy(n int, cfg genConfig) []int {
	rng := cfg.rng
	m := cfg.majorityOr(defaultHeavyMajority)
	k := int(float64(n) * cfg.heavyRatio)

	data := make([]int, n)
	for i := 0; i < k; i++ {
		data[i] = m
	}
	for i := k; i < n; i++ {
		data[i] = m + heavyFillerBase + rng.Intn(heavyFillerRange)
	}

	shuffle(rng, data)

	return data
}
