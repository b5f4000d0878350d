// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer folds an interleaved multi-channel Source into a single channel by
// averaging every frame. Mono sources pass straight through.
type MonoMixer struct {
	src Source
	tmp []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src: src,
		tmp: make([]float32, 0, 8192),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing mixed source: %w", err)
	}

	return nil
}

// ReadSamples writes up to len(dst) mono frames.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	switch {
	case channels < 1:
		return 0, ErrNoChannels
	case channels == 1:
		return m.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(m.tmp) < need {
		m.tmp = make([]float32, need)
	}
	m.tmp = m.tmp[:need]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	// a trailing partial frame is dropped
	frames := n / channels
	scale := 1 / float32(channels)
	for f := range frames {
		frame := m.tmp[f*channels : (f+1)*channels]

		var sum float32
		for _, v := range frame {
			sum += v
		}
		dst[f] = sum * scale
	}

	return frames, err
}
