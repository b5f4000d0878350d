// SPDX-License-Identifier: EPL-2.0

// Package vad detects speech and silence regions in a quantized waveform.
//
// The detector never looks at energy or spectra: a sample is active when it
// survives quantization (see package quantize). Runs of active and inactive
// samples are filtered by minimum durations, silence runs split by too
// little speech are merged, and the remaining gaps become padded speech
// regions.
//
//	res, err := vad.Detect(w, quantize.Config{Exponent: 5.5}, vad.DefaultConfig())
//	for _, r := range res.Speech {
//	    fmt.Printf("%.2fs - %.2fs\n", r.StartSeconds(res.SampleRate), r.EndSeconds(res.SampleRate))
//	}
//
// Detection is a pure function of its inputs and keeps no state between calls.
package vad
