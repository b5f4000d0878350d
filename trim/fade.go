// SPDX-License-Identifier: EPL-2.0

package trim

import (
	"math"
	"slices"
)

func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// FadeIn samples the logistic curve at n evenly spaced points over
// [-steepness, steepness], endpoints included.
func FadeIn(n int, steepness float64) []float64 {
	if n <= 0 {
		return nil
	}

	env := make([]float64, n)
	if n == 1 {
		env[0] = Sigmoid(-steepness)
		return env
	}

	delta := 2 * steepness / float64(n-1)
	for i := range env {
		env[i] = Sigmoid(-steepness + float64(i)*delta)
	}
	env[n-1] = Sigmoid(steepness)

	return env
}

// FadeOut is FadeIn reversed.
func FadeOut(n int, steepness float64) []float64 {
	env := FadeIn(n, steepness)
	slices.Reverse(env)

	return env
}
