// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ik5/audtrim/internal/audiotest"
)

// stallSource never produces data and never finishes.
type stallSource struct{}

func (stallSource) SampleRate() int                   { return 8000 }
func (stallSource) Channels() int                     { return 1 }
func (stallSource) BufSize() int                      { return 16 }
func (stallSource) Close() error                      { return nil }
func (stallSource) ReadSamples([]float32) (int, error) { return 0, nil }

type brokenSource struct{ stallSource }

var errBroken = errors.New("broken stream")

func (brokenSource) ReadSamples([]float32) (int, error) { return 0, errBroken }

func TestWaveform_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w    Waveform
		want error
	}{
		{"ok", Waveform{Samples: []float64{0}, SampleRate: 8000}, nil},
		{"empty", Waveform{SampleRate: 8000}, ErrEmptyWaveform},
		{"zero rate", Waveform{Samples: []float64{0}}, ErrInvalidSampleRate},
		{"negative rate", Waveform{Samples: []float64{0}, SampleRate: -1}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.w.Validate()
			if tt.want == nil && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWaveform_Timing(t *testing.T) {
	t.Parallel()

	w := Silence(24000, 16000)

	if w.Len() != 24000 {
		t.Errorf("Len() = %d", w.Len())
	}
	if w.Duration() != 1500*time.Millisecond {
		t.Errorf("Duration() = %v, want 1.5s", w.Duration())
	}
	if w.Seconds() != 1.5 {
		t.Errorf("Seconds() = %v, want 1.5", w.Seconds())
	}
	if got := w.SamplesFor(0.25); got != 4000 {
		t.Errorf("SamplesFor(0.25) = %d, want 4000", got)
	}
	if got := (Waveform{Samples: []float64{1}}).Duration(); got != 0 {
		t.Errorf("Duration() without rate = %v, want 0", got)
	}
	if got := MillisToSamples(30, 48000); got != 1440 {
		t.Errorf("MillisToSamples(30, 48000) = %d, want 1440", got)
	}
	if got := Silence(-3, 8000).Len(); got != 0 {
		t.Errorf("Silence(-3) has %d samples", got)
	}
}

func TestWaveform_Clone(t *testing.T) {
	t.Parallel()

	w := Waveform{Samples: []float64{0.1, 0.2}, SampleRate: 8000}
	c := w.Clone()
	c.Samples[0] = 9

	if w.Samples[0] != 0.1 {
		t.Error("Clone() shares its samples with the original")
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	samples := audiotest.Concat(audiotest.Zeros(8000, 0.5), audiotest.Tone(8000, 0.5, 200, 0.8))
	w, err := Collect(audiotest.NewSliceSource(8000, samples))
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if w.SampleRate != 8000 || w.Len() != len(samples) {
		t.Fatalf("Collect() = %d samples at %d Hz, want %d at 8000", w.Len(), w.SampleRate, len(samples))
	}
	for i := range samples {
		if w.Samples[i] != float64(float32(samples[i])) {
			t.Fatalf("sample %d = %v, want %v", i, w.Samples[i], samples[i])
		}
	}
}

func TestCollect_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(16000, 2, 5000, func(_ int, ch int) float32 {
		return float32(ch) // 0 and 1 average to 0.5
	})

	w, err := Collect(src)
	if err != nil {
		t.Fatal(err)
	}
	if w.Len() != 5000 {
		t.Fatalf("Len() = %d, want 5000", w.Len())
	}
	if w.Samples[4999] != 0.5 {
		t.Errorf("last sample = %v, want 0.5", w.Samples[4999])
	}
}

func TestCollect_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Collect(audiotest.NewSilentSource(0, 1, 10)); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("zero rate: error = %v", err)
	}
	if _, err := Collect(stallSource{}); !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("stalled source: error = %v, want io.ErrNoProgress", err)
	}
	if _, err := Collect(brokenSource{}); !errors.Is(err, errBroken) {
		t.Errorf("broken source: error = %v, want errBroken", err)
	}
}
