// Package bench drives the majority-vote benchmark sweep.
//
// A Runner visits every (size, flavor) pair of its Config in order. For each
// case it generates the dataset, performs Warmup uninstrumented calls on a
// copy, then one instrumented majority.Measure call tagged with the flavor.
// The resulting Metrics go to the Runner's metrics.Collector, and inputs no
// larger than VerifyLimit are cross-checked against the quadratic reference.
//
// A mismatch is logged at warn level and counted in the Report. With Strict
// set, Run stops at the first mismatch and returns ErrMismatch.
//
// WriteTable renders a Report as the console table, one block per size:
//
//	Testing input size: 1,000
//	------------------------------
//	  random         :    0.021 ms |    1,502 accesses |  1,000 comparisons | Result: 17
//
// Runner is not safe for concurrent Run calls; the Collector it feeds is.
package bench
