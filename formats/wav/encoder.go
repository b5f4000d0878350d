// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audtrim/utils"
)

// DefaultBitDepth is used by Encode callers that have no preference.
const DefaultBitDepth = 16

// Encode writes samples as a mono integer PCM WAV at sampleRate.
// bitDepth must be 16, 24 or 32. The header sizes are patched on close,
// which is why w must be seekable.
func Encode(w io.WriteSeeker, sampleRate, bitDepth int, samples []float64) error {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupportedWavLayout, sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = utils.FloatToPCM(s, bitDepth)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV header: %w", err)
	}

	return nil
}
