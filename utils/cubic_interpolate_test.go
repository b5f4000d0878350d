// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{name: "start returns y1", y0: 0.2, y1: -0.4, y2: 0.9, y3: 0.1, x: 0, want: -0.4},
		{name: "end returns y2", y0: 0.2, y1: -0.4, y2: 0.9, y3: 0.1, x: 1, want: 0.9},
		{name: "constant", y0: 0.5, y1: 0.5, y2: 0.5, y3: 0.5, x: 0.37, want: 0.5},
		{name: "linear midpoint", y0: 0, y1: 1, y2: 2, y3: 3, x: 0.5, want: 1.5},
		{name: "linear quarter", y0: 0, y1: 1, y2: 2, y3: 3, x: 0.25, want: 1.25},
		{name: "symmetric peak", y0: 0, y1: 1, y2: 1, y3: 0, x: 0.5, want: 1.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("CubicInterpolate(%g, %g, %g, %g, %g) = %g, want %g",
					tt.y0, tt.y1, tt.y2, tt.y3, tt.x, got, tt.want)
			}
		})
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	for b.Loop() {
		_ = CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0.5)
	}
}
