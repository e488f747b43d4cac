// Package majority is a small toolkit around the Boyer-Moore majority vote:
// the algorithm itself, per-call instrumentation, dataset generators and a
// reproducible benchmark harness with CSV and Prometheus export.
//
// 🚀 What is inside?
//
//	A generic, allocation-free majority vote plus the tooling to measure it:
//		• Engine: exact vote with verification, assume-exists single pass,
//		  sampling-based approximation
//		• Instrumentation: array accesses, comparisons, candidate assignments
//		  and wall time, returned per call
//		• Datasets: random, sorted, reverse-sorted, nearly-sorted and
//		  majority-heavy inputs, deterministic per seed
//		• Harness: size × flavor sweeps cross-checked against a quadratic
//		  reference
//		• Export: CSV, console table, Prometheus collectors
//
// ✨ Why use it?
//
//   - O(n) time, O(1) extra space, any comparable element type
//   - Metrics are values; concurrent callers never share counters
//   - Deterministic datasets make benchmark runs comparable
//
// Layout:
//
//	majority/  - FindMajority, FindMajorityAssumeExists, Measure, Approximate
//	dataset/   - flavor generators
//	metrics/   - Collector, CSV, Summary, Prometheus observer
//	bench/     - sweep Runner and console table
//	config/    - YAML sweep configuration
//	cmd/       - the majority CLI
//
// Quick start:
//
//	v, ok := majority.FindMajority([]int{3, 2, 3, 4, 3, 3, 3}) // 3, true
//
//	go install github.com/katalvlaran/majority/cmd/majority@latest
//	majority 50000
package majority
