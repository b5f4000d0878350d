// SPDX-License-Identifier: EPL-2.0

// Package trim cuts a recording down to its active span and rebuilds it
// with sigmoid fades and fixed lead-in and tail silence.
//
// The endpoints are the first and last samples that survive quantization,
// widened by a small padding. The output is
//
//	front zeros | fade-in | untouched middle | fade-out | back zeros
//
// and its length is always front + back + (last - first).
package trim
