// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// maxEmptyReads bounds how many consecutive zero-length reads Collect
// tolerates before giving up on a source.
const maxEmptyReads = 100

// Waveform is a fully decoded mono signal.
type Waveform struct {
	Samples    []float64
	SampleRate int
}

func (w Waveform) Len() int { return len(w.Samples) }

// Duration of the waveform; zero when the sample rate is not positive.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(w.Samples)) / float64(w.SampleRate) * float64(time.Second))
}

// Seconds is Duration as a float, convenient for reports.
func (w Waveform) Seconds() float64 {
	if w.SampleRate <= 0 {
		return 0
	}

	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// SamplesFor converts seconds to a sample count at the waveform rate,
// truncating toward zero.
func (w Waveform) SamplesFor(seconds float64) int {
	return SecondsToSamples(seconds, w.SampleRate)
}

func (w Waveform) Clone() Waveform {
	return Waveform{
		Samples:    append([]float64(nil), w.Samples...),
		SampleRate: w.SampleRate,
	}
}

// Validate reports whether the waveform can be processed.
func (w Waveform) Validate() error {
	if w.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleRate, w.SampleRate)
	}

	if len(w.Samples) == 0 {
		return ErrEmptyWaveform
	}

	return nil
}

// Silence returns n zero samples at sampleRate.
func Silence(n, sampleRate int) Waveform {
	return Waveform{
		Samples:    make([]float64, max(n, 0)),
		SampleRate: sampleRate,
	}
}

func SecondsToSamples(seconds float64, sampleRate int) int {
	return int(seconds * float64(sampleRate))
}

func MillisToSamples(ms float64, sampleRate int) int {
	return int(ms * float64(sampleRate) / 1000)
}

// Collect drains src into a mono Waveform. Multi-channel sources are
// averaged down with a MonoMixer. The source is not closed.
func Collect(src Source) (Waveform, error) {
	if src.SampleRate() <= 0 {
		return Waveform{}, fmt.Errorf("%w: got %d", ErrInvalidSampleRate, src.SampleRate())
	}

	var mono Source = src
	if src.Channels() != 1 {
		mono = NewMonoMixer(src)
	}

	bufSize := mono.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	buf := make([]float32, bufSize)

	w := Waveform{SampleRate: src.SampleRate()}
	empty := 0
	for {
		n, err := mono.ReadSamples(buf)
		for _, v := range buf[:n] {
			w.Samples = append(w.Samples, float64(v))
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Waveform{}, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}

		empty++
		if empty >= maxEmptyReads {
			return Waveform{}, io.ErrNoProgress
		}
	}

	return w, nil
}
