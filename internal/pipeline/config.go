// Package pipeline drives exploration: iterative deepening over a seed
// set, a cheap structural scoring pass, and model checking for the top
// candidates only. Depth 2 over the full catalog yields tens of thousands
// of candidates, so the two-phase split is load-bearing: structural
// scoring is linear in signature size while model checking is exponential
// in domain size.
package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is one exploration run. YAML fields mirror the CLI flags; flags
// override file values.
type Config struct {
	// Bases names seed structures; empty means the whole catalog.
	Bases []string `yaml:"bases"`
	// Depth is the iterative-deepening depth.
	Depth int `yaml:"depth"`
	// Moves restricts the applied moves; empty means all eight.
	Moves []string `yaml:"moves"`
	// ExcludeMoves removes moves after Moves is resolved.
	ExcludeMoves []string `yaml:"exclude_moves"`

	// Threshold drops candidates scoring below it structurally.
	Threshold float64 `yaml:"threshold"`
	// TopN bounds how many candidates reach the model finder.
	TopN int `yaml:"top_n"`

	// CheckModels enables the spectrum phase.
	CheckModels bool `yaml:"check_models"`
	MinSize     int  `yaml:"min_size"`
	MaxSize     int  `yaml:"max_size"`
	MaxPerSize  int  `yaml:"max_models_per_size"`
	// TimeoutMS bounds each solver check, in milliseconds.
	TimeoutMS int `yaml:"timeout_ms"`
	// HeavyMultiplier stretches the timeout for heavy signatures.
	HeavyMultiplier float64 `yaml:"heavy_timeout_multiplier"`
	// Workers sizes the model-checking pool; 1 means serial.
	Workers int `yaml:"workers"`
}

// DefaultConfig mirrors the CLI defaults.
func DefaultConfig() Config {
	return Config{
		Depth:           1,
		TopN:            20,
		MinSize:         2,
		MaxSize:         6,
		MaxPerSize:      10,
		TimeoutMS:       30000,
		HeavyMultiplier: 2.0,
		Workers:         1,
	}
}

// LoadConfig reads a YAML run config, applying defaults for absent fields.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the driver cannot run.
func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", c.Depth)
	}
	if c.MinSize < 1 || c.MaxSize < c.MinSize {
		return fmt.Errorf("bad size range [%d, %d]", c.MinSize, c.MaxSize)
	}
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	return nil
}
