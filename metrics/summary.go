package metrics

import (
	"fmt"

	"github.com/katalvlaran/majority/majority"
)

// Summary renders one record as a multi-line report.
func Summary(m majority.Metrics) string {
	return fmt.Sprintf(
		"Algorithm: %s\n"+
			"Input Size: %d (%s)\n"+
			"Array Accesses: %d\n"+
			"Comparisons: %d\n"+
			"Memory Allocations: %d\n"+
			"Execution Time: %.3f ms\n"+
			"Time Complexity: O(n)\n"+
			"Space Complexity: O(1)",
		m.Algorithm, m.InputSize, m.InputType,
		m.ArrayAccesses, m.Comparisons, m.MemoryAllocations,
		m.ExecutionTimeMs(),
	)
}
