// SPDX-License-Identifier: MIT
// Package: majority/dataset
//
// impl_sorted.go - the "sorted", "reverse-sorted" and "nearly-sorted" flavors.
//
// All three plant exactly ⌊n/2⌋+1 copies of the majority value m:
//   • sorted:          [m × k, m+1, m+2, …]               (non-decreasing)
//   • reverse-sorted:  [m+(n−k), …, m+1, m × k]           (non-increasing)
//   • nearly-sorted:   sorted, then max(1, ⌊n·swapRatio⌋) random swaps.

package dataset

func genSorted(n int, cfg genConfig) []int {
	m := cfg.majorityOr(defaultSortedMajority)
	k := majorityCount(n)

	data := make([]int, n)
	for i := 0; i < k; i++ {
		data[i] = m
	}
	for i := k; i < n; i++ {
		data[i] = m + (i - k + 1)
	}

	return data
}

func genReverseSorted(n int, cfg genConfig) []int {
	m := cfg.majorityOr(defaultSortedMajority)
	k := majorityCount(n)
	rest := n - k

	data := make([]int, n)
	for i := 0; i < rest; i++ {
		data[i] = m + (rest - i)
	}
	for i := rest; i < n; i++ {
		data[i] = m
	}

	return data
}

func genNearlySorted(n int, cfg genConfig) []int {
	data := genSorted(n, cfg)

	swaps := int(float64(n) * cfg.swapRatio)
	if swaps < 1 {
		swaps = 1
	}

	rng := cfg.rng
	for i := 0; i < swaps; i++ {
		a, b := rng.Intn(n), rng.Intn(n)
		data[a], data[b] = data[b], data[a]
	}

	return data
}
