// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF WAVE files through github.com/go-audio/wav.
//
// Decoding accepts integer PCM at 16, 24 or 32 bits, any channel count and
// any sample rate. Samples are delivered as float32 in [-1, 1]:
//
//	file, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(file)
//
// Encode writes a mono integer PCM file. The go-audio encoder patches the
// RIFF sizes when it is closed, so the destination must be an io.WriteSeeker
// such as an *os.File:
//
//	out, _ := os.Create("trimmed.wav")
//	err := wav.Encode(out, 16000, wav.DefaultBitDepth, samples)
//
// Samples outside [-1, 1] are clipped.
package wav
