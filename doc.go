// SPDX-License-Identifier: EPL-2.0

// Package audtrim trims speech recordings down to their active span.
//
// The work is split over a few packages:
//
//   - quantize maps samples onto 2^exponent levels; what survives is "active"
//   - vad turns the activity mask into speech and silence regions
//   - trim cuts a waveform at its first and last active samples and adds fades
//   - batch runs trim over a directory tree
//   - viewer steps through files and re-runs detection at different exponents
//
// This package holds the file I/O those packages share. Files reads any
// format registered in DefaultRegistry into a mono audio.Waveform and writes
// waveforms back as PCM WAV:
//
//	files := audtrim.Files{}
//	w, err := files.Read("takes/001.flac")
//	if err != nil {
//	    return err
//	}
//
//	out, _, err := trim.Trim(w, trim.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	err = files.Write("trimmed/001.wav", out)
//
// # Supported Formats
//
//   - WAV (integer PCM, 16/24/32-bit) via formats/wav
//   - FLAC via formats/flac
//   - Ogg Vorbis via formats/vorbis
//   - AIFF/AIFC (16/24-bit) via formats/aiff
//   - MP3 via formats/mp3
//
// Output is always mono PCM WAV.
package audtrim
