// SPDX-License-Identifier: EPL-2.0

package quantize

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the magnitude above which a quantized sample counts as active
// when searching for endpoints.
const Epsilon = 1e-6

var (
	ErrInvalidStep    = errors.New("quantization step must be positive and finite")
	ErrSilentWaveform = errors.New("waveform peak is zero, nothing to quantize against")
)

// Config selects the quantization grid.
type Config struct {
	// Exponent sets the level count to 2^Exponent. It may be fractional.
	Exponent float64
	// MaxValue is the reference peak. Zero means use the waveform's own peak.
	MaxValue float64
}

// Levels returns 2^Exponent.
func (c Config) Levels() float64 {
	return math.Exp2(c.Exponent)
}

// StepFor resolves the step for samples, deriving the reference peak from
// them when MaxValue is zero.
func (c Config) StepFor(samples []float64) (float64, error) {
	maxValue := c.MaxValue
	if maxValue == 0 {
		maxValue = Peak(samples)
		if maxValue == 0 {
			return 0, ErrSilentWaveform
		}
	}

	return Step(c.Exponent, maxValue)
}

// Step returns 2*maxValue / 2^exponent.
func Step(exponent, maxValue float64) (float64, error) {
	step := 2 * maxValue / math.Exp2(exponent)
	if !(step > 0) || math.IsInf(step, 0) {
		return 0, fmt.Errorf("%w: exponent %g, max value %g", ErrInvalidStep, exponent, maxValue)
	}

	return step, nil
}

// Quantize rounds every sample to the nearest multiple of step, ties to
// even. A sample quantizes to exactly zero once its magnitude falls below
// half a step. The input is left untouched.
func Quantize(samples []float64, step float64) []float64 {
	out := make([]float64, len(samples))
	for i, x := range samples {
		out[i] = step * math.RoundToEven(x/step)
	}

	return out
}

// Mask marks the samples whose quantized value is non-zero.
func Mask(quantized []float64) []bool {
	mask := make([]bool, len(quantized))
	for i, q := range quantized {
		mask[i] = q != 0
	}

	return mask
}

// ActiveBounds returns the first and last index whose magnitude exceeds
// epsilon. ok is false when there is none.
func ActiveBounds(quantized []float64, epsilon float64) (first, last int, ok bool) {
	first = -1
	for i, q := range quantized {
		if math.Abs(q) > epsilon {
			first = i
			break
		}
	}
	if first < 0 {
		return 0, 0, false
	}

	for i := len(quantized) - 1; i >= first; i-- {
		if math.Abs(quantized[i]) > epsilon {
			last = i
			break
		}
	}

	return first, last, true
}

// Peak returns the largest absolute value in samples.
func Peak(samples []float64) float64 {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}

	return peak
}
