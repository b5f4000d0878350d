// SPDX-License-Identifier: EPL-2.0

// Package config loads the audtrim YAML configuration file.
//
// Every field has a default, so a file only needs the values it changes:
//
//	trim:
//	  exponent: 7.3
//	  fade_duration: 0.05
//	batch:
//	  workers: 4
//	  on_unreadable: placeholder
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/quantize"
	"github.com/ik5/audtrim/trim"
	"github.com/ik5/audtrim/vad"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Quantization QuantizationConfig `yaml:"quantization"`
	Detection    vad.Config         `yaml:"detection"`
	Trim         trim.Config        `yaml:"trim"`
	Batch        BatchConfig        `yaml:"batch"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// QuantizationConfig is the grid used by detect and view. Trimming has its
// own exponent under trim.
type QuantizationConfig struct {
	Exponent float64 `yaml:"exponent"`
	MaxValue float64 `yaml:"max_value"` // 0 = waveform peak
}

type BatchConfig struct {
	Recursive    bool         `yaml:"recursive"`
	Workers      int          `yaml:"workers"` // 0 = GOMAXPROCS
	OnUnreadable batch.Policy `yaml:"on_unreadable"`
	BitDepth     int          `yaml:"bit_depth"`
	TargetRate   int          `yaml:"target_rate"` // 0 = keep
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Quantization: QuantizationConfig{Exponent: 5.5},
		Detection:    vad.DefaultConfig(),
		Trim:         trim.DefaultConfig(),
		Batch: BatchConfig{
			OnUnreadable: batch.PolicySkip,
			BitDepth:     16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load overlays the YAML file at path on Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Decode is Load for an already open stream. An empty stream yields the
// defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Quantize() quantize.Config {
	return quantize.Config{Exponent: c.Quantization.Exponent, MaxValue: c.Quantization.MaxValue}
}

func (c Config) Validate() error {
	if err := c.Quantization.Validate(); err != nil {
		return fmt.Errorf("quantization: %w", err)
	}
	if err := c.Detection.Validate(); err != nil {
		return fmt.Errorf("detection: %w", err)
	}
	if err := c.Trim.Validate(); err != nil {
		return fmt.Errorf("trim: %w", err)
	}
	if err := c.Batch.Validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	return nil
}

func (q QuantizationConfig) Validate() error {
	if q.MaxValue < 0 {
		return fmt.Errorf("%w: max_value must not be negative, got %g", ErrInvalid, q.MaxValue)
	}

	// a zero max value is resolved per waveform; check the grid with 1.0
	maxValue := q.MaxValue
	if maxValue == 0 {
		maxValue = 1
	}
	if _, err := quantize.Step(q.Exponent, maxValue); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func (b BatchConfig) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, b.Workers)
	}
	if err := b.OnUnreadable.Validate(); err != nil {
		return err
	}

	switch b.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit_depth must be 16, 24 or 32, got %d", ErrInvalid, b.BitDepth)
	}

	if b.TargetRate < 0 {
		return fmt.Errorf("%w: target_rate must not be negative, got %d", ErrInvalid, b.TargetRate)
	}

	return nil
}
