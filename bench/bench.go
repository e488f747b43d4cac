package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/majority/dataset"
	"github.com/katalvlaran/majority/internal/logger"
	"github.com/katalvlaran/majority/internal/oracle"
	"github.com/katalvlaran/majority/majority"
	"github.com/katalvlaran/majority/metrics"
)

var (
	// ErrNoCases indicates a Config without sizes or without flavors.
	ErrNoCases = errors.New("bench: no cases")

	// ErrMismatch indicates the vote disagreed with the reference (Strict only).
	ErrMismatch = errors.New("bench: result mismatch")
)

// Config describes one sweep.
type Config struct {
	Sizes       []int
	Flavors     []dataset.Flavor
	Warmup      int   // uninstrumented calls before the measured one
	Seed        int64 // dataset seed, identical for every case
	VerifyLimit int   // sizes above this skip the reference check
	Strict      bool  // stop at the first mismatch
}

// CaseResult is the outcome of one (size, flavor) case.
type CaseResult struct {
	Size    int
	Flavor  dataset.Flavor
	Value   int
	Found   bool
	Metrics majority.Metrics

	Verified bool // the reference check ran
	Mismatch bool // the reference check ran and disagreed
}

// Report collects every case of a Run in sweep order.
type Report struct {
	Cases      []CaseResult
	Mismatches int
}

// Runner executes sweeps.
type Runner struct {
	cfg       Config
	collector *metrics.Collector
	log       *slog.Logger

	// measure is majority.Measure unless replaced in tests.
	measure func([]int, ...majority.Option) (int, bool, majority.Metrics)
}

// NewRunner returns a Runner. A nil collector gets a fresh one and a nil
// logger discards.
func NewRunner(cfg Config, collector *metrics.Collector, log *slog.Logger) *Runner {
	if collector == nil {
		collector = metrics.NewCollector()
	}
	if log == nil {
		log = logger.Discard()
	}
	if cfg.Warmup < 0 {
		cfg.Warmup = 0
	}

	return &Runner{cfg: cfg, collector: collector, log: log, measure: majority.Measure[int]}
}

// Collector returns the collector the Runner feeds.
func (r *Runner) Collector() *metrics.Collector { return r.collector }

// Run sweeps sizes in order and, within each size, flavors in order.
//
// Cancellation is checked between cases. On error the partial Report is
// returned alongside it.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var rep Report
	if len(r.cfg.Sizes) == 0 || len(r.cfg.Flavors) == 0 {
		return rep, ErrNoCases
	}

	for _, size := range r.cfg.Sizes {
		for _, flavor := range r.cfg.Flavors {
			if err := ctx.Err(); err != nil {
				return rep, err
			}

			res, err := r.RunCase(flavor, size)
			if err != nil {
				return rep, err
			}
			rep.Cases = append(rep.Cases, res)
			if res.Mismatch {
				rep.Mismatches++
				if r.cfg.Strict {
					return rep, fmt.Errorf("%w: %s n=%d", ErrMismatch, flavor, size)
				}
			}
		}
	}

	r.log.Info("bench.done",
		slog.Int("cases", len(rep.Cases)),
		slog.Int("mismatches", rep.Mismatches),
		slog.Int("records", r.collector.Len()),
	)

	return rep, nil
}

// RunCase generates one dataset and measures it.
func (r *Runner) RunCase(flavor dataset.Flavor, size int) (CaseResult, error) {
	data, err := dataset.Generate(flavor, size, r.cfg.Seed)
	if err != nil {
		return CaseResult{}, err
	}

	if r.cfg.Warmup > 0 {
		scratch := make([]int, len(data))
		for i := 0; i < r.cfg.Warmup; i++ {
			copy(scratch, data)
			majority.FindMajority(scratch)
		}
	}

	v, ok, m := r.measure(data, majority.WithInputType(flavor.String()))
	r.collector.Add(m)

	res := CaseResult{Size: size, Flavor: flavor, Value: v, Found: ok, Metrics: m}
	r.log.Debug("bench.case",
		slog.String("flavor", flavor.String()),
		slog.Int("size", size),
		slog.Bool("found", ok),
		slog.Int("value", v),
		slog.Int64("accesses", m.ArrayAccesses),
		slog.Int64("comparisons", m.Comparisons),
		slog.Duration("elapsed", m.Elapsed),
	)

	if size <= r.cfg.VerifyLimit {
		res.Verified = true
		want, wantOK := oracle.Reference(data)
		if wantOK != ok || (ok && want != v) {
			res.Mismatch = true
			r.log.Warn("bench.mismatch",
				slog.String("flavor", flavor.String()),
				slog.Int("size", size),
				slog.String("vote", formatResult(v, ok)),
				slog.String("reference", formatResult(want, wantOK)),
			)
		}
	}

	return res, nil
}

// formatResult renders a vote outcome, "None" when there is no majority.
func formatResult(v int, ok bool) string {
	if !ok {
		return "None"
	}
	return fmt.Sprint(v)
}
