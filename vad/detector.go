// SPDX-License-Identifier: EPL-2.0

package vad

import (
	"errors"
	"fmt"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/quantize"
)

type state int

const (
	stateSilence state = iota
	statePotentialSpeech
)

// Detect quantizes w with q and runs DetectMask over the resulting activity
// mask. A waveform whose peak is zero is treated as entirely silent.
func Detect(w audio.Waveform, q quantize.Config, cfg Config) (Result, error) {
	if w.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", audio.ErrInvalidSampleRate, w.SampleRate)
	}

	step, err := q.StepFor(w.Samples)
	switch {
	case errors.Is(err, quantize.ErrSilentWaveform):
		return DetectMask(make([]bool, w.Len()), w.SampleRate, cfg)
	case err != nil:
		return Result{}, err
	}

	return DetectMask(quantize.Mask(quantize.Quantize(w.Samples, step)), w.SampleRate, cfg)
}

// DetectMask finds speech regions in an activity mask.
//
// A left-to-right scan splits the mask into silence and speech runs and
// keeps only runs that reach their minimum length. Silence runs separated
// by less than the minimum speech length are merged. Speech regions are the
// gaps between merged silence runs that reach the minimum speech length,
// widened by the pad. The raw speech runs of the scan only decide what gets
// merged and are not reported.
func DetectMask(mask []bool, sampleRate int, cfg Config) (Result, error) {
	if sampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", audio.ErrInvalidSampleRate, sampleRate)
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{SampleRate: sampleRate, Length: len(mask)}
	if len(mask) == 0 {
		return res, nil
	}

	th := cfg.thresholds(sampleRate)
	silence, rawSpeech := scan(mask, th)
	res.Silence = mergeSilence(silence, th.minSpeech)
	res.Speech = speechBetween(res.Silence, rawSpeech, len(mask), th)

	return res, nil
}

// scan runs the two-state machine over mask. Runs shorter than their
// minimum are dropped without affecting the state.
func scan(mask []bool, th thresholds) (silence, speech []Region) {
	st := stateSilence
	start := 0

	for i, active := range mask {
		switch {
		case st == stateSilence && active:
			if i-start >= th.minSilence {
				silence = append(silence, Region{start, i})
			}
			start = i
			st = statePotentialSpeech
		case st == statePotentialSpeech && !active:
			if i-start >= th.minSpeech {
				speech = append(speech, Region{start, i})
			}
			start = i
			st = stateSilence
		}
	}

	n := len(mask)
	switch st {
	case statePotentialSpeech:
		if n-start >= th.minSpeech {
			speech = append(speech, Region{start, n})
		}
	case stateSilence:
		if n-start >= th.minSilence {
			silence = append(silence, Region{start, n})
		}
	}

	return silence, speech
}

// mergeSilence joins a silence region onto its predecessor when the speech
// between them is shorter than minSpeech.
func mergeSilence(silence []Region, minSpeech int) []Region {
	var merged []Region
	for _, s := range silence {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if s.Start-last.End < minSpeech {
				last.End = s.End
				continue
			}
		}
		merged = append(merged, s)
	}

	return merged
}

// speechBetween derives the final speech regions from the merged silence.
func speechBetween(silence, rawSpeech []Region, n int, th thresholds) []Region {
	var kept []Region
	if len(silence) == 0 {
		// nothing ever went quiet for long enough: whatever speech the scan
		// found is one region
		if len(rawSpeech) > 0 {
			span := Region{rawSpeech[0].Start, rawSpeech[len(rawSpeech)-1].End}
			if span.Len() >= th.minSpeech {
				kept = append(kept, span)
			}
		}
		return pad(kept, n, th.pad)
	}

	candidates := make([]Region, 0, len(silence)+1)
	if first := silence[0]; first.Start > 0 {
		candidates = append(candidates, Region{0, first.Start})
	}
	for i := 0; i+1 < len(silence); i++ {
		candidates = append(candidates, Region{silence[i].End, silence[i+1].Start})
	}
	if last := silence[len(silence)-1]; last.End < n {
		candidates = append(candidates, Region{last.End, n})
	}

	for _, c := range candidates {
		if c.Len() >= th.minSpeech {
			kept = append(kept, c)
		}
	}

	return pad(kept, n, th.pad)
}

// pad widens every region by padding samples, clamped to [0, n]. When the
// silence between two neighbours is shorter than twice the padding it is
// split evenly so the regions only touch.
func pad(regions []Region, n, padding int) []Region {
	if padding <= 0 || len(regions) == 0 {
		return regions
	}

	out := make([]Region, len(regions))
	for i, r := range regions {
		out[i] = Region{max(0, r.Start-padding), min(n, r.End+padding)}

		if i == 0 {
			continue
		}

		prev := &out[i-1]
		if prev.End > out[i].Start {
			gapStart, gapEnd := regions[i-1].End, r.Start
			prev.End = gapStart + (gapEnd-gapStart)/2
			out[i].Start = prev.End
		}
	}

	return out
}
