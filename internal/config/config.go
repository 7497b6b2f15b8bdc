// SPDX-License-Identifier: MIT

// Package config holds the demo configuration and its YAML persistence.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cxm/matrix"
)

const (
	DefaultKind     = "float64"
	DefaultSize     = 3
	DefaultLogLevel = "info"

	// FillCount is the number of operand fills (A, B, C).
	FillCount = 3
)

// ErrInvalidConfig is returned by Validate; the wrapped message names the field.
var ErrInvalidConfig = errors.New("config: invalid")

// Config describes one demo run.
type Config struct {
	Kind     string    `yaml:"kind"`
	Size     int       `yaml:"size"`
	Fills    []float64 `yaml:"fills"`
	LogLevel string    `yaml:"log_level"`
	Metrics  bool      `yaml:"metrics"`
}

// DefaultConfig reproduces the classic scenario: 3×3 doubles filled 1, 2, 3.
func DefaultConfig() *Config {
	return &Config{
		Kind:     DefaultKind,
		Size:     DefaultSize,
		Fills:    []float64{1, 2, 3},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// ElementKind resolves the configured kind name.
func (c *Config) ElementKind() (matrix.Kind, error) {
	return matrix.ParseKind(c.Kind)
}

// Validate checks the kind resolves, the size is positive and exactly
// FillCount fills are given. For integer kinds every fill must be a whole
// number inside the kind's range. Kind errors keep matrix.ErrUnsupportedElementKind.
func (c *Config) Validate() error {
	kind, err := c.ElementKind()
	if err != nil {
		return fmt.Errorf("config: kind: %w", err)
	}
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be >= 1, got %d", ErrInvalidConfig, c.Size)
	}
	if len(c.Fills) != FillCount {
		return fmt.Errorf("%w: want %d fills, got %d", ErrInvalidConfig, FillCount, len(c.Fills))
	}
	for i, f := range c.Fills {
		if !fillFits(kind, f) {
			return fmt.Errorf("%w: fill %d (%v) is not a valid %s", ErrInvalidConfig, i, f, kind)
		}
	}

	return nil
}

// fillFits reports whether f converts to kind without truncation or overflow.
// Float kinds accept any value.
func fillFits(kind matrix.Kind, f float64) bool {
	var lo, hi float64
	switch kind {
	case matrix.KindInt32:
		lo, hi = math.MinInt32, math.MaxInt32+1
	case matrix.KindInt64:
		// MaxInt64 is not exact in float64; 2^63 is the first value out of range.
		lo, hi = math.MinInt64, -math.MinInt64
	default:
		return true
	}

	return f == math.Trunc(f) && f >= lo && f < hi
}
