// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives shared by every
// other package in audtrim.
//
// It contains:
//   - Source, the streaming interface every format decoder implements
//   - Registry, which maps file extensions to decoders
//   - MonoMixer, which averages interleaved channels down to mono
//   - Waveform, a fully decoded mono signal, and Collect to build one
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values in [-1, 1]. A read that returns
// n == 0 together with io.EOF marks the end of the stream.
//
// # Waveforms
//
// Detection and trimming work on whole files, so decoded sources are
// drained into a Waveform:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	w, err := audio.Collect(src)
//	// w.Samples is []float64, w.SampleRate is in Hz
//
// Collect down-mixes multi-channel input with a MonoMixer.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("take-01.WAV")
//
// Keys are case-insensitive extensions without the leading dot.
package audio
