// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyWaveform     = errors.New("waveform has no samples")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoChannels        = errors.New("source reports no channels")
	ErrInvalidDstSize    = errors.New("dst length must be a multiple of the channel count")
)
