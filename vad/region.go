// SPDX-License-Identifier: EPL-2.0

package vad

import "fmt"

// Region is the half-open sample interval [Start, End).
type Region struct {
	Start int
	End   int
}

func (r Region) Len() int { return r.End - r.Start }

func (r Region) StartSeconds(sampleRate int) float64 {
	return float64(r.Start) / float64(sampleRate)
}

func (r Region) EndSeconds(sampleRate int) float64 {
	return float64(r.End) / float64(sampleRate)
}

// Seconds is the region length in seconds.
func (r Region) Seconds(sampleRate int) float64 {
	return float64(r.Len()) / float64(sampleRate)
}

func (r Region) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Result is the outcome of one detection pass.
type Result struct {
	// Speech holds the final, padded speech regions in ascending order.
	Speech []Region
	// Silence holds the merged silence regions in ascending order.
	Silence []Region

	SampleRate int
	// Length is the number of samples that were scanned.
	Length int
}

// SpeechSamples sums the length of all speech regions.
func (r Result) SpeechSamples() int {
	var total int
	for _, s := range r.Speech {
		total += s.Len()
	}

	return total
}
