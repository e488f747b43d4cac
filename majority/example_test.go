package majority_test

import (
	"fmt"

	"github.com/katalvlaran/majority/majority"
)

// ExampleFindMajority shows the exact two-pass query on inputs with and
// without a strict majority.
func ExampleFindMajority() {
	v, ok := majority.FindMajority([]int{3, 2, 3, 4, 3, 3, 3})
	fmt.Println(v, ok)

	_, ok = majority.FindMajority([]int{1, 1, 2, 2})
	fmt.Println(ok)
	// Output:
	// 3 true
	// false
}

// ExampleFindMajorityAssumeExists skips verification when the caller knows
// a majority is present.
func ExampleFindMajorityAssumeExists() {
	v, _ := majority.FindMajorityAssumeExists([]int{7, 7, 5, 7, 5, 1, 5, 7, 5, 5, 7, 7, 7, 7, 7, 7})
	fmt.Println(v)
	// Output: 7
}

// ExampleMeasure reads the per-call operation counters.
func ExampleMeasure() {
	v, ok, m := majority.Measure([]int{-1, -1, -1, 2, 2}, majority.WithInputType("negative"))
	fmt.Printf("result=%d ok=%v type=%s accesses=%d comparisons=%d\n",
		v, ok, m.InputType, m.ArrayAccesses, m.Comparisons)
	// Output: result=-1 ok=true type=negative accesses=8 comparisons=7
}
