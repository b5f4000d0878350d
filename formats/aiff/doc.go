// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF and AIFF-C files (.aiff, .aif, .aifc) with
// github.com/go-audio/aiff.
//
// 16 and 24-bit PCM is supported at any rate and channel count:
//
//	file, _ := os.Open("take.aif")
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio needs an io.ReadSeeker; any other reader is buffered in memory
// first.
package aiff
