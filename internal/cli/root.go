// Package cli implements the majority command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
)

// errUsage marks argument errors; the usage text has already been printed.
var errUsage = errors.New("invalid arguments")

const usage = `Usage:
  majority           - Run comprehensive benchmark
  majority <size>    - Run benchmark for specific size

Examples:
  majority
  majority 50000
`

// Execute runs the root command and exits 1 on any error. An interrupt
// cancels the sweep between cases.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts sweepOptions

	cmd := &cobra.Command{
		Use:           "majority [size]",
		Short:         "Boyer-Moore majority vote benchmark",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(c *cobra.Command, args []string) error {
			if _, err := parseArgs(args); err != nil {
				return misuse(c, stdout, stderr, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := parseArgs(args)
			opts.flags = cmd.Flags()
			err := runSweep(cmd.Context(), stdout, stderr, size, opts)
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file (defaults apply when omitted)")
	f.StringVar(&opts.out, "out", "", "CSV output path (default benchmark_results.csv or benchmark_size_<n>.csv)")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging with source locations")
	f.BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics after the sweep")
	f.IntVar(&opts.warmup, "warmup", 0, "uninstrumented runs before each measurement")
	f.IntVar(&opts.verifyLimit, "verify-limit", 0, "largest size cross-checked against the reference")
	f.BoolVar(&opts.strict, "strict", false, "stop at the first result mismatch")

	// Inherited by subcommands.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return misuse(c, stdout, stderr, err)
	})

	cmd.AddCommand(demoCmd(stdout, stderr), flavorsCmd(stdout, stderr))
	return cmd
}

// misuse prints err and the usage text of c, and returns err marked as errUsage.
func misuse(c *cobra.Command, stdout, stderr io.Writer, err error) error {
	if !errors.Is(err, errUsage) {
		err = fmt.Errorf("%w: %w", errUsage, err)
	}
	fmt.Fprintf(stderr, "%v\n", err)
	if c.HasParent() {
		fmt.Fprint(stdout, c.UsageString())
	} else {
		fmt.Fprint(stdout, usage)
	}
	return err
}

// checkArgs wraps a cobra argument validator so failures print usage.
func checkArgs(stdout, stderr io.Writer, v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(c *cobra.Command, args []string) error {
		if err := v(c, args); err != nil {
			return misuse(c, stdout, stderr, err)
		}
		return nil
	}
}

// parseArgs returns 0 for a full sweep or the single requested size.
func parseArgs(args []string) (int, error) {
	switch len(args) {
	case 0:
		return 0, nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%w: invalid size: %s", errUsage, args[0])
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected at most one size, got %d arguments", errUsage, len(args))
	}
}
