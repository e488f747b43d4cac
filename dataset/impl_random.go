// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// impl_random.go - the "random" flavor.
//
// Model:
//   • With probability majorityChance: pick v ∈ [0,valueRange) (or the fixed
//     majority value), plant k = ⌊n/2⌋+1+U[0,⌊n/4⌋) copies (capped at n), fill
//     the rest with values from [0,valueRange) that differ from v, shuffle.
//   • Otherwise: every position independently uniform in [0,n). No majority is
//     engineered, though one can occur by chance for tiny n.

package dataset

func genRandom(n int, cfg genConfig) []int {
	rng := cfg.rng
	data := make([]int, n)

	if rng.Float64() >= cfg.majorityChance {
		for i := range data {
			data[i] = rng.Intn(n)
		}
		return data
	}

	value := cfg.majorityOr(rng.Intn(cfg.valueRange))

	k := majorityCount(n)
	if spread := n / 4; spread > 0 {
		k += rng.Intn(spread)
	}
	if k > n {
		k = n
	}

	for i := 0; i < k; i++ {
		data[i] = value
	}
	for i := k; i < n; i++ {
		// valueRange ≥ 2, so rejection always terminates.
		v := rng.Intn(cfg.valueRange)
		for v == value {
			v = rng.Intn(cfg.valueRange)
		}
		data[i] = v
	}

	shuffle(rng, data)

	return data
}
