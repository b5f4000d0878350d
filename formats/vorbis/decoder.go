// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return 4096 * s.channels }

// ReadSamples fills dst with whole frames only; a dst shorter than one
// frame reads nothing.
func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}

	// oggvorbis reads interleaved samples straight into the slice
	n, err := s.dec.Read(dst[:frames*s.channels])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("decoding vorbis packet: %w", err)
	}

	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}

	if dec.Channels() < 1 {
		return nil, audio.ErrNoChannels
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
