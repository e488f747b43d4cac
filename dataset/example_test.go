package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/majority/dataset"
)

// ExampleGenerate_sorted shows the sorted flavor: the majority block first,
// then strictly increasing values.
func ExampleGenerate_sorted() {
	data, err := dataset.Generate(dataset.Sorted, 7, 42)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(data)
	// Output: [1 1 1 1 2 3 4]
}

// ExampleGenerate_reverseSorted mirrors the sorted layout.
func ExampleGenerate_reverseSorted() {
	data, _ := dataset.Generate(dataset.ReverseSorted, 7, 42, dataset.WithMajorityValue(10))
	fmt.Println(data)
	// Output: [13 12 11 10 10 10 10]
}

// ExampleParseFlavor rejects labels outside the closed set.
func ExampleParseFlavor() {
	_, err := dataset.ParseFlavor("zigzag")
	fmt.Println(err)
	// Output: ParseFlavor: "zigzag": dataset: unknown flavor
}
