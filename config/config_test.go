package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/majority/config"
	"github.com/katalvlaran/majority/dataset"
)

func TestDefault(t *testing.T) {
	f := config.Default()
	require.NoError(t, f.Validate())

	assert.Equal(t, []int{100, 1000, 10000, 100000}, f.Sizes)
	assert.Equal(t, dataset.Flavors(), f.ParsedFlavors())
	assert.Equal(t, 5, f.Warmup)
	assert.Equal(t, int64(42), f.Seed)
	assert.Equal(t, 10000, f.VerifyLimit)
	assert.Equal(t, "benchmark_results.csv", f.Output)
	assert.False(t, f.Metrics.Prometheus)

	// Default hands out fresh slices.
	f.Sizes[0] = 1
	assert.Equal(t, 100, config.Default().Sizes[0])
}

func TestLoad_Full(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []int{100, 1000}, f.Sizes)
	assert.Equal(t, []dataset.Flavor{dataset.Random, dataset.MajorityHeavy}, f.ParsedFlavors())
	assert.Equal(t, 3, f.Warmup)
	assert.Equal(t, int64(7), f.Seed)
	assert.Equal(t, 1000, f.VerifyLimit)
	assert.Equal(t, "results.csv", f.Output)
	assert.Equal(t, config.LogConfig{Level: "warn", Format: "json"}, f.Log)
	assert.Equal(t, config.MetricsConfig{Prometheus: true, Namespace: "sweep"}, f.Metrics)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20}, f.Sizes)
	assert.Equal(t, 0, f.Warmup, "explicit zero overrides the default")
	assert.Equal(t, "debug", f.Log.Level)
	assert.Equal(t, "text", f.Log.Format)
	assert.Equal(t, int64(42), f.Seed)
	assert.Len(t, f.Flavors, 5)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrNotFound)

	_, err = config.Load(filepath.Join("testdata", "bad_flavor.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, dataset.ErrUnknownFlavor)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"Malformed", "sizes: [1, 2"},
		{"EmptySizes", "sizes: []"},
		{"ZeroSize", "sizes: [0]"},
		{"NegativeWarmup", "warmup: -1"},
		{"NegativeVerifyLimit", "verify_limit: -5"},
		{"EmptyFlavors", "flavors: []"},
		{"EmptyOutput", "output: \"\""},
		{"BadLevel", "log: {level: loud}"},
		{"BadFormat", "log: {format: xml}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}
