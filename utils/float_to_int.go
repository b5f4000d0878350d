// SPDX-License-Identifier: EPL-2.0

package utils

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer of
// bitDepth bits. The positive peak maps to the largest positive value so
// full scale never overflows.
func FloatToPCM(x float64, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(x * float64(PCMScale(bitDepth)-1))
}

// PCMToFloat is the inverse of FloatToPCM, mapping the most negative value to -1.
func PCMToFloat(v, bitDepth int) float32 {
	return float32(v) / float32(PCMScale(bitDepth))
}

// PCMScale returns 2^(bitDepth-1), the magnitude of the most negative sample.
func PCMScale(bitDepth int) int {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}

	return 1 << (bitDepth - 1)
}
