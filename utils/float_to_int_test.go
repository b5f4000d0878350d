// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestFloatToPCM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    float64
		bitDepth int
		want     int
	}{
		{name: "zero", input: 0, bitDepth: 16, want: 0},
		{name: "full scale positive", input: 1, bitDepth: 16, want: math.MaxInt16},
		{name: "full scale negative", input: -1, bitDepth: 16, want: -math.MaxInt16},
		{name: "half positive", input: 0.5, bitDepth: 16, want: 16383},
		{name: "half negative", input: -0.5, bitDepth: 16, want: -16383},
		{name: "clamp above", input: 1.5, bitDepth: 16, want: math.MaxInt16},
		{name: "clamp below", input: -2, bitDepth: 16, want: -math.MaxInt16},
		{name: "24 bit", input: 1, bitDepth: 24, want: 1<<23 - 1},
		{name: "32 bit", input: -1, bitDepth: 32, want: -(1<<31 - 1)},
		{name: "bad depth falls back", input: 1, bitDepth: 0, want: math.MaxInt16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FloatToPCM(tt.input, tt.bitDepth); got != tt.want {
				t.Errorf("FloatToPCM(%g, %d) = %d, want %d", tt.input, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPCMToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v        int
		bitDepth int
		want     float32
	}{
		{v: 0, bitDepth: 16, want: 0},
		{v: math.MinInt16, bitDepth: 16, want: -1},
		{v: 16384, bitDepth: 16, want: 0.5},
		{v: -(1 << 23), bitDepth: 24, want: -1},
	}

	for _, tt := range tests {
		if got := PCMToFloat(tt.v, tt.bitDepth); got != tt.want {
			t.Errorf("PCMToFloat(%d, %d) = %g, want %g", tt.v, tt.bitDepth, got, tt.want)
		}
	}
}

func TestPCMRoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{16, 24} {
		tolerance := 2 / float64(PCMScale(depth))
		for _, x := range []float64{-0.75, -0.1, 0, 0.3, 0.999} {
			got := float64(PCMToFloat(FloatToPCM(x, depth), depth))
			if math.Abs(got-x) > tolerance {
				t.Errorf("%d-bit round trip of %g = %g", depth, x, got)
			}
		}
	}
}

func TestPCMScale(t *testing.T) {
	t.Parallel()

	tests := map[int]int{
		8:  128,
		16: 32768,
		24: 1 << 23,
		32: 1 << 31,
		0:  32768,
		64: 32768,
	}

	for depth, want := range tests {
		if got := PCMScale(depth); got != want {
			t.Errorf("PCMScale(%d) = %d, want %d", depth, got, want)
		}
	}
}

func BenchmarkFloatToPCM(b *testing.B) {
	for b.Loop() {
		_ = FloatToPCM(0.5, 16)
	}
}
