// SPDX-License-Identifier: EPL-2.0

// Package quantize maps a waveform onto a coarse grid of 2^exponent levels.
//
// With a step of 2*maxValue/2^exponent every sample smaller than half a step
// rounds to exactly zero, which turns quantization into a cheap activity
// detector: the non-zero samples form the activity mask consumed by the vad
// package, and the first and last of them are the endpoints the trim
// package cuts at.
//
//	step, _ := quantize.Step(7.3, 1.0)
//	q := quantize.Quantize(samples, step)
//	mask := quantize.Mask(q)
//	first, last, ok := quantize.ActiveBounds(q, quantize.Epsilon)
package quantize
