// SPDX-License-Identifier: EPL-2.0

package vad

import (
	"errors"
	"fmt"

	"github.com/ik5/audtrim/audio"
)

var ErrInvalidConfig = errors.New("invalid detection config")

// Config holds the detector durations in milliseconds. They are converted to
// sample counts at detection time using the waveform's own sample rate.
type Config struct {
	MinSpeechDurationMs  float64 `yaml:"min_speech_ms"`
	MinSilenceDurationMs float64 `yaml:"min_silence_ms"`
	SpeechPadMs          float64 `yaml:"speech_pad_ms"`
}

// DefaultConfig matches the interactive viewer defaults.
func DefaultConfig() Config {
	return Config{
		MinSpeechDurationMs:  100,
		MinSilenceDurationMs: 100,
		SpeechPadMs:          0,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MinSpeechDurationMs < 0:
		return fmt.Errorf("%w: min speech duration %gms is negative", ErrInvalidConfig, c.MinSpeechDurationMs)
	case c.MinSilenceDurationMs < 0:
		return fmt.Errorf("%w: min silence duration %gms is negative", ErrInvalidConfig, c.MinSilenceDurationMs)
	case c.SpeechPadMs < 0:
		return fmt.Errorf("%w: speech pad %gms is negative", ErrInvalidConfig, c.SpeechPadMs)
	}

	return nil
}

// thresholds are the Config durations expressed in samples.
type thresholds struct {
	minSpeech  int
	minSilence int
	pad        int
}

func (c Config) thresholds(sampleRate int) thresholds {
	return thresholds{
		minSpeech:  audio.MillisToSamples(c.MinSpeechDurationMs, sampleRate),
		minSilence: audio.MillisToSamples(c.MinSilenceDurationMs, sampleRate),
		pad:        audio.MillisToSamples(c.SpeechPadMs, sampleRate),
	}
}
