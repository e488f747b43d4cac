package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/majority/dataset"
	"github.com/katalvlaran/majority/internal/logger"
)

var (
	// ErrInvalidConfig indicates a file that parses but fails validation,
	// or does not parse at all.
	ErrInvalidConfig = errors.New("config: invalid config")

	// ErrNotFound indicates the config file could not be read.
	ErrNotFound = errors.New("config: not found")
)

// Defaults.
const (
	DefaultWarmup      = 5
	DefaultSeed        = 42
	DefaultVerifyLimit = 10000
	DefaultOutput      = "benchmark_results.csv"
)

// DefaultSizes are the input sizes of a full sweep.
var DefaultSizes = []int{100, 1000, 10000, 100000}

// File is the on-disk configuration.
type File struct {
	Sizes       []int         `yaml:"sizes"`
	Flavors     []string      `yaml:"flavors"`
	Warmup      int           `yaml:"warmup"`       // uninstrumented runs before each measurement
	Seed        int64         `yaml:"seed"`         // dataset seed, shared by every case
	VerifyLimit int           `yaml:"verify_limit"` // largest size checked against the quadratic oracle
	Output      string        `yaml:"output"`       // CSV path of a full sweep
	Log         LogConfig     `yaml:"log"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	Prometheus bool   `yaml:"prometheus"`
	Namespace  string `yaml:"namespace"`
}

// Default returns the built-in configuration.
func Default() File {
	flavors := make([]string, 0, len(dataset.Flavors()))
	for _, f := range dataset.Flavors() {
		flavors = append(flavors, f.String())
	}

	return File{
		Sizes:       append([]int(nil), DefaultSizes...),
		Flavors:     flavors,
		Warmup:      DefaultWarmup,
		Seed:        DefaultSeed,
		VerifyLimit: DefaultVerifyLimit,
		Output:      DefaultOutput,
		Log:         LogConfig{Level: "info", Format: logger.FormatText},
		Metrics:     MetricsConfig{Namespace: "majority"},
	}
}

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}

	return Parse(b)
}

// Parse decodes YAML bytes over Default and validates the result.
func Parse(b []byte) (File, error) {
	f := Default()
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Validate checks f for logical consistency.
func (f File) Validate() error {
	if len(f.Sizes) == 0 {
		return fmt.Errorf("%w: sizes must not be empty", ErrInvalidConfig)
	}
	for _, n := range f.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d must be positive", ErrInvalidConfig, n)
		}
	}
	if len(f.Flavors) == 0 {
		return fmt.Errorf("%w: flavors must not be empty", ErrInvalidConfig)
	}
	if _, err := dataset.ParseFlavors(f.Flavors); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if f.Warmup < 0 {
		return fmt.Errorf("%w: warmup %d is negative", ErrInvalidConfig, f.Warmup)
	}
	if f.VerifyLimit < 0 {
		return fmt.Errorf("%w: verify_limit %d is negative", ErrInvalidConfig, f.VerifyLimit)
	}
	if f.Output == "" {
		return fmt.Errorf("%w: output must not be empty", ErrInvalidConfig)
	}
	if _, err := logger.New(nil, logger.Config{Level: f.Log.Level, Format: f.Log.Format}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// ParsedFlavors returns Flavors as dataset values. Call after Validate.
func (f File) ParsedFlavors() []dataset.Flavor {
	fs, _ := dataset.ParseFlavors(f.Flavors)
	return fs
}
