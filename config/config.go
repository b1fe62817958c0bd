package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/quadlab/catalog"
	"github.com/katalvlaran/quadlab/core"
	"github.com/katalvlaran/quadlab/quadrature"
)

var log = logging.MustGetLogger("config")

// ErrInvalidConfig wraps every validation failure of a Config.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one run of the lab experiments.
type Config struct {
	Function    string            `yaml:"function"`
	Interval    *IntervalConfig   `yaml:"interval"`
	Reference   *float64          `yaml:"reference"`
	Seed        *int64            `yaml:"seed"`
	OutputDir   string            `yaml:"output-dir"`
	LogLevel    string            `yaml:"log-level"`
	Sampling    SamplingConfig    `yaml:"sampling"`
	Areas       AreasConfig       `yaml:"areas"`
	Report      ReportConfig      `yaml:"report"`
	Table       TableConfig       `yaml:"table"`
	Convergence ConvergenceConfig `yaml:"convergence"`
}

// IntervalConfig overrides the catalog entry's default bounds.
type IntervalConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// SamplingConfig tunes the adaptive partitioner's dense grid.
type SamplingConfig struct {
	Oversample int  `yaml:"oversample"`
	MinSamples int  `yaml:"min-samples"`
	Uniform    bool `yaml:"uniform"`
}

// AreasConfig drives the partition figure.
type AreasConfig struct {
	Counts []int  `yaml:"counts,flow"`
	File   string `yaml:"file"`
}

// ReportConfig drives the single-n value/error report.
type ReportConfig struct {
	N int `yaml:"n"`
}

// TableConfig drives the estimates-per-n table.
type TableConfig struct {
	Counts []int `yaml:"counts,flow"`
}

// ConvergenceConfig drives the error study, its figure and CSV export.
type ConvergenceConfig struct {
	MaxN  int      `yaml:"max-n"`
	Rules []string `yaml:"rules,flow"`
	File  string   `yaml:"file"`
	CSV   string   `yaml:"csv"`
}

// Default returns the classic lab setup: 2^x on [0,1], figures for
// n = 4, 8, 16, a report at n = 10, a table for n = 2^0..2^7 and an error
// study up to n = 300.
func Default() Config {
	return Config{
		Function:  catalog.DefaultName,
		OutputDir: ".",
		LogLevel:  "info",
		Sampling: SamplingConfig{
			Oversample: 5,
			MinSamples: 1000,
		},
		Areas: AreasConfig{
			Counts: []int{4, 8, 16},
			File:   "areas.png",
		},
		Report: ReportConfig{N: 10},
		Table:  TableConfig{Counts: []int{1, 2, 4, 8, 16, 32, 64, 128}},
		Convergence: ConvergenceConfig{
			MaxN:  300,
			Rules: []string{"middle", "trapezoid", "simpson"},
			File:  "convergence.png",
			CSV:   "convergence.csv",
		},
	}
}

// Load reads a YAML file over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("Load(%s): %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	log.Infof("loaded config %s (function=%s)", path, cfg.Function)

	return cfg, nil
}

// Validate checks every field and reports the first offending one.
func (c Config) Validate() error {
	entry, err := catalog.Lookup(c.Function)
	if err != nil {
		return invalid("function", err)
	}
	iv := c.bounds(entry)
	if err := core.ValidateInterval(iv.A, iv.B); err != nil {
		return invalid("interval", err)
	}
	if c.Sampling.Oversample < 1 {
		return invalid("sampling.oversample", fmt.Errorf("%d < 1", c.Sampling.Oversample))
	}
	if c.Sampling.MinSamples < 2 {
		return invalid("sampling.min-samples", fmt.Errorf("%d < 2", c.Sampling.MinSamples))
	}
	for _, counts := range [][]int{c.Areas.Counts, c.Table.Counts, {c.Report.N, c.Convergence.MaxN}} {
		for _, n := range counts {
			if err := core.ValidateCount(n); err != nil {
				return invalid("counts", err)
			}
		}
	}
	if _, err := quadrature.ParseRules(c.Convergence.Rules); err != nil {
		return invalid("convergence.rules", err)
	}
	if _, err := logging.LogLevel(c.LogLevel); err != nil {
		return invalid("log-level", err)
	}

	return nil
}

// Entry resolves the configured catalog entry.
func (c Config) Entry() (catalog.Entry, error) {
	return catalog.Lookup(c.Function)
}

// Bounds returns the configured interval, or the entry's default.
func (c Config) Bounds() (core.Interval, error) {
	entry, err := c.Entry()
	if err != nil {
		return core.Interval{}, err
	}
	iv := c.bounds(entry)

	return core.NewInterval(iv.A, iv.B)
}

// ReferenceValue returns the configured reference or the exact integral.
func (c Config) ReferenceValue() (float64, error) {
	if c.Reference != nil {
		return *c.Reference, nil
	}
	entry, err := c.Entry()
	if err != nil {
		return 0, err
	}
	iv := c.bounds(entry)

	return entry.Reference(iv.A, iv.B), nil
}

func (c Config) bounds(e catalog.Entry) core.Interval {
	if c.Interval != nil {
		return core.Interval{A: c.Interval.A, B: c.Interval.B}
	}

	return e.Interval()
}

func invalid(field string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
}
