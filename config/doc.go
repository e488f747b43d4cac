// Package config loads the benchmark sweep settings from YAML.
//
// Load starts from Default and overlays whatever keys the file sets, so a
// file may name only the fields it changes. Validate rejects non-positive
// sizes, negative warmup or verify limits, unknown flavors and unknown
// log settings; every failure wraps ErrInvalidConfig. A missing file wraps
// ErrNotFound.
//
// Example file:
//
//	sizes: [100, 1000]
//	flavors: [random, majority-heavy]
//	warmup: 3
//	seed: 7
//	verify_limit: 1000
//	output: results.csv
//	log:
//	  level: debug
//	  format: json
//	metrics:
//	  prometheus: true
//	  namespace: majority
package config
