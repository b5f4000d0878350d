// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/utils"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
)

var (
	ErrNotFlacFile         = errors.New("not a FLAC file")
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")
)

// frameReader is the part of flac.Stream the source needs; it allows testing.
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameReader
	closer     io.Closer
	sampleRate int
	channels   int
	bitDepth   int

	// pending holds interleaved samples of the current frame not yet handed out
	pending []float32
	eof     bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) BufSize() int    { return 4096 * s.channels }

func (s *source) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / s.channels
	if frames == 0 {
		return 0, nil
	}
	want := frames * s.channels

	written := 0
	for written < want {
		if len(s.pending) == 0 {
			if s.eof {
				break
			}
			if err := s.nextFrame(); err != nil {
				return written, err
			}
			continue
		}

		n := copy(dst[written:want], s.pending)
		s.pending = s.pending[n:]
		written += n
	}

	if written == 0 && s.eof {
		return 0, io.EOF
	}

	return written, nil
}

func (s *source) nextFrame() error {
	f, err := s.dec.ParseNext()
	if errors.Is(err, io.EOF) {
		s.eof = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("decoding FLAC frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: frame has %d channels, stream %d", ErrNotFlacFile, len(f.Subframes), s.channels)
	}

	blockSize := len(f.Subframes[0].Samples)
	if cap(s.pending) < blockSize*s.channels {
		s.pending = make([]float32, blockSize*s.channels)
	}
	s.pending = s.pending[:blockSize*s.channels]

	for ch, sub := range f.Subframes {
		for i, v := range sub.Samples[:blockSize] {
			s.pending[i*s.channels+ch] = utils.PCMToFloat(int(v), s.bitDepth)
		}
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info == nil || info.NChannels == 0 || info.SampleRate == 0 {
		stream.Close()
		return nil, ErrNotFlacFile
	}

	if info.BitsPerSample < 8 || info.BitsPerSample > 32 {
		stream.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return &source{
		dec:        stream,
		closer:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   int(info.BitsPerSample),
	}, nil
}
