// SPDX-License-Identifier: EPL-2.0

package trim

import (
	"errors"
	"fmt"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/quantize"
)

// Report describes how a waveform was cut.
type Report struct {
	// First and Last are the padded endpoints. Last itself is not copied.
	First int
	Last  int
	// Active is false when nothing survived quantization and the whole
	// clip was kept.
	Active bool

	FadeLength int
	// FadeClamped is set when FadeLength was shortened to fit the window.
	FadeClamped bool

	Front  int
	Back   int
	Length int
}

// Trim returns w cut to its padded active span with fades applied and the
// configured silence added at both ends. w is not modified.
func Trim(w audio.Waveform, cfg Config) (audio.Waveform, Report, error) {
	if err := cfg.Validate(); err != nil {
		return audio.Waveform{}, Report{}, err
	}
	if err := w.Validate(); err != nil {
		return audio.Waveform{}, Report{}, err
	}

	n := w.Len()
	rep := Report{First: 0, Last: n - 1}

	first, last, ok, err := activeSpan(w.Samples, cfg)
	if err != nil {
		return audio.Waveform{}, Report{}, err
	}
	if ok {
		rep.Active = true
		pad := w.SamplesFor(cfg.EndpointPaddingSec)
		rep.First = max(0, first-pad)
		rep.Last = min(n-1, last+pad)
	}

	window := rep.Last - rep.First
	fade := w.SamplesFor(cfg.FadeDurationSec)
	if 2*fade > window {
		if cfg.StrictFade {
			return audio.Waveform{}, Report{}, fmt.Errorf("%w: %d samples against a window of %d",
				ErrFadeTooLong, fade, window)
		}
		fade = window / 2
		rep.FadeClamped = true
	}
	rep.FadeLength = fade

	rep.Front = w.SamplesFor(cfg.FrontSilenceSec)
	rep.Back = w.SamplesFor(cfg.BackSilenceSec)

	out := make([]float64, rep.Front+window+rep.Back)
	body := out[rep.Front : rep.Front+window]
	copy(body, w.Samples[rep.First:rep.Last])

	for i, g := range FadeIn(fade, cfg.FadeSteepness) {
		body[i] *= g
	}
	tail := body[window-fade:]
	for i, g := range FadeOut(fade, cfg.FadeSteepness) {
		tail[i] *= g
	}

	rep.Length = len(out)

	return audio.Waveform{Samples: out, SampleRate: w.SampleRate}, rep, nil
}

// activeSpan finds the unpadded endpoints. An all-zero waveform has none.
func activeSpan(samples []float64, cfg Config) (first, last int, ok bool, err error) {
	q := quantize.Config{Exponent: cfg.Exponent, MaxValue: cfg.MaxValue}

	step, err := q.StepFor(samples)
	if errors.Is(err, quantize.ErrSilentWaveform) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}

	first, last, ok = quantize.ActiveBounds(quantize.Quantize(samples, step), quantize.Epsilon)

	return first, last, ok, nil
}
