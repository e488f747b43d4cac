package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/majority/dataset"
	"github.com/katalvlaran/majority/majority"
	"github.com/katalvlaran/majority/metrics"
)

type demoCase struct {
	title     string
	input     []int
	inputType string
}

var demoCases = []demoCase{
	{"Example 1: Array with majority element", []int{3, 2, 3, 4, 3, 3, 3}, "demo-with-majority"},
	{"Example 2: Array without majority element", []int{1, 2, 3, 4, 5}, "demo-no-majority"},
	{"Example 3: Edge case - single element", []int{42}, "demo-single-element"},
}

func demoCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the three demo inputs and print their performance summaries",
		Args:  checkArgs(stdout, stderr, cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo(stdout)
		},
	}
}

func runDemo(w io.Writer) error {
	for _, c := range demoCases {
		v, ok, m := majority.Measure(c.input, majority.WithInputType(c.inputType))
		result := "None"
		if ok {
			result = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintf(w, "%s\nInput: %v\nMajority element: %s\nPerformance: %s\n\n",
			c.title, c.input, result, metrics.Summary(m)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, majority.Analysis())
	return err
}

func flavorsCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "flavors",
		Short: "List the dataset flavors of a sweep",
		Args:  checkArgs(stdout, stderr, cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, f := range dataset.Flavors() {
				if _, err := fmt.Fprintln(stdout, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
