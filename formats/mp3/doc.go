// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with github.com/hajimehoshi/go-mp3.
//
// The underlying decoder always emits interleaved stereo, so sources from
// this package report two channels even for mono recordings; audio.Collect
// folds them back to mono.
//
//	file, _ := os.Open("take.mp3")
//	src, err := mp3.Decoder{}.Decode(file)
package mp3
