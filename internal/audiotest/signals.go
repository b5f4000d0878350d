// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Zeros returns seconds of digital silence at sampleRate.
func Zeros(sampleRate int, seconds float64) []float64 {
	return make([]float64, int(seconds*float64(sampleRate)))
}

// Tone returns a sine burst. The phase is offset by a quarter period so the
// first sample sits on a peak instead of a zero crossing.
func Tone(sampleRate int, seconds, frequency, amplitude float64) []float64 {
	n := int(seconds * float64(sampleRate))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = amplitude * math.Cos(2*math.Pi*frequency*t)
	}

	return out
}

// Constant returns n copies of value.
func Constant(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Concat joins the given sample runs.
func Concat(parts ...[]float64) []float64 {
	var total int
	for _, p := range parts {
		total += len(p)
	}

	out := make([]float64, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
