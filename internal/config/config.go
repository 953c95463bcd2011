package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dispatchbench/internal/bench"
	"github.com/san-kum/dispatchbench/internal/constants"
)

const (
	DefaultDataDir = ".dispatchbench"
	DefaultUnit    = "ms"
)

// Config is the harness-level configuration: which benchmarks run and how
// long, never what they compute. Workload parameters stay fixed in the
// constants package.
type Config struct {
	Filter      string  `yaml:"filter"`
	Iterations  int     `yaml:"iterations"`
	MinTime     float64 `yaml:"min_time"` // seconds
	Repetitions int     `yaml:"repetitions"`
	Unit        string  `yaml:"unit"` // ms, us, s
	DataDir     string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Iterations:  constants.BenchmarkIterations,
		MinTime:     constants.MinTime.Seconds(),
		Repetitions: 1,
		Unit:        DefaultUnit,
		DataDir:     DefaultDataDir,
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// BenchConfig translates the file-level settings into the harness
// configuration the runner consumes.
func (c *Config) BenchConfig() (bench.Config, error) {
	unit, err := parseUnit(c.Unit)
	if err != nil {
		return bench.Config{}, err
	}
	return bench.Config{
		Iterations:  c.Iterations,
		MinTime:     time.Duration(c.MinTime * float64(time.Second)),
		Repetitions: c.Repetitions,
		Unit:        unit,
	}, nil
}

func parseUnit(unit string) (time.Duration, error) {
	switch unit {
	case "", "ms":
		return time.Millisecond, nil
	case "us":
		return time.Microsecond, nil
	case "s":
		return time.Second, nil
	default:
		return 0, fmt.Errorf("unknown display unit: %s", unit)
	}
}
