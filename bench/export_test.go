package bench

import "github.com/katalvlaran/majority/majority"

// SetMeasure replaces the instrumented vote used by r.
func SetMeasure(r *Runner, fn func([]int, ...majority.Option) (int, bool, majority.Metrics)) {
	r.measure = fn
}
