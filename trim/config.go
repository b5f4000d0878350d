// SPDX-License-Identifier: EPL-2.0

package trim

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfig = errors.New("invalid trim config")
	ErrFadeTooLong   = errors.New("fade is longer than half the active window")
)

// Config controls endpoint detection and reassembly. Durations are in
// seconds and converted with the waveform's sample rate, truncating.
type Config struct {
	// Exponent of the quantization grid used to find the endpoints.
	Exponent float64 `yaml:"exponent"`
	// MaxValue is the quantization reference. Zero uses the waveform peak.
	MaxValue float64 `yaml:"max_value"`

	EndpointPaddingSec float64 `yaml:"endpoint_padding"`
	FadeDurationSec    float64 `yaml:"fade_duration"`
	FadeSteepness      float64 `yaml:"fade_steepness"`
	FrontSilenceSec    float64 `yaml:"front_silence"`
	BackSilenceSec     float64 `yaml:"back_silence"`

	// StrictFade rejects a fade that does not fit the active window instead
	// of shortening it.
	StrictFade bool `yaml:"strict_fade"`
}

func DefaultConfig() Config {
	return Config{
		Exponent:           7.3,
		EndpointPaddingSec: 0.03,
		FadeDurationSec:    0.03,
		FadeSteepness:      2,
		FrontSilenceSec:    0.5,
		BackSilenceSec:     0.45,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.Exponent) || math.IsInf(c.Exponent, 0) {
		return fmt.Errorf("%w: exponent %g", ErrInvalidConfig, c.Exponent)
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"max value", c.MaxValue},
		{"endpoint padding", c.EndpointPaddingSec},
		{"fade duration", c.FadeDurationSec},
		{"fade steepness", c.FadeSteepness},
		{"front silence", c.FrontSilenceSec},
		{"back silence", c.BackSilenceSec},
	}
	for _, f := range fields {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s %g", ErrInvalidConfig, f.name, f.value)
		}
	}

	return nil
}
