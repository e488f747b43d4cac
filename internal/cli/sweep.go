package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/majority/bench"
	"github.com/katalvlaran/majority/config"
	"github.com/katalvlaran/majority/internal/logger"
	"github.com/katalvlaran/majority/majority"
	"github.com/katalvlaran/majority/metrics"
)

type sweepOptions struct {
	configPath  string
	out         string
	debug       bool
	metrics     bool
	warmup      int
	verifyLimit int
	strict      bool

	flags *pflag.FlagSet
}

// resolve loads the config file (or defaults) and applies flag overrides.
func (o sweepOptions) resolve() (config.File, error) {
	f := config.Default()
	if o.configPath != "" {
		var err error
		if f, err = config.Load(o.configPath); err != nil {
			return config.File{}, err
		}
	}

	if o.changed("warmup") {
		f.Warmup = o.warmup
	}
	if o.changed("verify-limit") {
		f.VerifyLimit = o.verifyLimit
	}
	if o.metrics {
		f.Metrics.Prometheus = true
	}
	if o.debug {
		f.Log.Level = "debug"
	}

	return f, f.Validate()
}

func (o sweepOptions) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// runSweep runs a full sweep (size == 0) or a single-size sweep.
func runSweep(ctx context.Context, stdout, stderr io.Writer, size int, o sweepOptions) error {
	f, err := o.resolve()
	if err != nil {
		return err
	}

	log, err := logger.New(stderr, logger.Config{Level: f.Log.Level, Format: f.Log.Format, Debug: o.debug})
	if err != nil {
		return err
	}

	sizes, out := f.Sizes, f.Output
	if size > 0 {
		sizes = []int{size}
		out = fmt.Sprintf("benchmark_size_%d.csv", size)
	}
	if o.out != "" {
		out = o.out
	}

	var (
		reg       *prometheus.Registry
		observers []metrics.Observer
	)
	if f.Metrics.Prometheus {
		reg = prometheus.NewRegistry()
		p, err := metrics.NewPrometheus(reg, f.Metrics.Namespace)
		if err != nil {
			return err
		}
		observers = append(observers, p)
	}
	collector := metrics.NewCollector(observers...)

	title := "Boyer-Moore Majority Vote Algorithm Benchmark"
	fmt.Fprintf(stdout, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))

	runner := bench.NewRunner(bench.Config{
		Sizes:       sizes,
		Flavors:     f.ParsedFlavors(),
		Warmup:      f.Warmup,
		Seed:        f.Seed,
		VerifyLimit: f.VerifyLimit,
		Strict:      o.strict,
	}, collector, log)

	rep, runErr := runner.Run(ctx)
	if err := bench.WriteTable(stdout, rep); err != nil {
		return err
	}

	// Cases measured before a cancellation or strict mismatch are still exported.
	if err := metrics.ExportCSV(out, collector.Records()); err != nil {
		if runErr != nil {
			return errors.Join(runErr, err)
		}
		return err
	}
	fmt.Fprintf(stdout, "\nResults exported to %s\n", out)
	if runErr != nil {
		return runErr
	}

	if size == 0 {
		fmt.Fprintf(stdout, "\n%s\n", majority.Analysis())
	}

	if reg != nil {
		fmt.Fprintln(stdout)
		if err := writeRegistry(stdout, reg); err != nil {
			return err
		}
	}

	return nil
}

// writeRegistry dumps every gathered family in the Prometheus text format.
func writeRegistry(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
