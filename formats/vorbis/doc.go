// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with github.com/jfreymuth/oggvorbis.
//
//	file, _ := os.Open("take.ogg")
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Samples are interleaved float32 values; reads always return whole frames.
package vorbis
