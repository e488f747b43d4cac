package majority

// Analysis returns a human-readable complexity report for the algorithm.
func Analysis() string {
	return `Boyer-Moore Majority Vote Algorithm Analysis:
==========================================
Time Complexity:
  - Best Case: Θ(n) - must examine all elements
  - Worst Case: Θ(n) - must examine all elements
  - Average Case: Θ(n) - must examine all elements

Space Complexity: O(1) - constant auxiliary space

Algorithm Properties:
  - Single pass through the input (with optional verification)
  - Constant extra memory usage
  - Early termination in verification phase

Comparison with naive O(n²) approach:
  - Space: O(1) vs O(1)
  - Time: O(n) vs O(n²)`
}
