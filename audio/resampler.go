// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audtrim/utils"
)

// Resampler converts an interleaved Source to another sample rate with
// Catmull-Rom interpolation. The channel count is preserved. When
// downsampling, a one-pole low-pass at the destination Nyquist frequency is
// applied to the input first.
type Resampler struct {
	src      Source
	dstRate  int
	channels int
	step     float64 // source frames per output frame

	// win holds frames t-1, t, t+1, t+2; output lies between win[1] and win[2]
	win  [4][]float32
	live [4]bool
	pos  float64

	buf     []float32
	bufPos  int
	bufLen  int
	srcDone bool

	alpha   float32
	state   []float32
	warm    bool
	primed  bool
	drained bool
}

func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrInvalidSampleRate, src.SampleRate(), dstRate)
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	size := src.BufSize()
	if size <= 0 {
		size = 4096
	}
	size -= size % channels
	if size == 0 {
		size = channels
	}

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		step:     float64(src.SampleRate()) / float64(dstRate),
		buf:      make([]float32, size),
		state:    make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	if r.step > 1 {
		cutoff := float64(dstRate) / 2
		r.alpha = float32(1 - math.Exp(-2*math.Pi*cutoff/float64(src.SampleRate())))
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return len(r.buf) }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampled source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with interleaved frames at the destination rate.
// len(dst) must be a multiple of Channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if r.drained {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < len(dst) {
		for r.pos >= 1 {
			if err := r.advance(); err != nil {
				return n, err
			}
			r.pos--
		}

		// past the last input frame; interpolating further would extrapolate
		if !r.live[1] || (r.pos > 0 && !r.live[2]) {
			r.drained = true
			return n, io.EOF
		}

		x := float32(r.pos)
		for c := range r.channels {
			dst[n+c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}
		n += r.channels
		r.pos += r.step
	}

	return n, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.win[1])
	if err != nil {
		return err
	}
	if !ok {
		r.drained = true
		return io.EOF
	}
	copy(r.win[0], r.win[1])
	r.live[0], r.live[1] = true, true

	for i := 2; i < len(r.win); i++ {
		if r.live[i], err = r.pull(r.win[i]); err != nil {
			return err
		}
		if !r.live[i] {
			copy(r.win[i], r.win[i-1])
		}
	}

	return nil
}

func (r *Resampler) advance() error {
	first := r.win[0]
	copy(r.win[:], r.win[1:])
	copy(r.live[:], r.live[1:])
	r.win[3] = first

	ok, err := r.pull(r.win[3])
	if err != nil {
		return err
	}
	r.live[3] = ok
	if !ok {
		copy(r.win[3], r.win[2])
	}

	return nil
}

// pull reads the next input frame into frame. It reports false once the
// source is exhausted.
func (r *Resampler) pull(frame []float32) (bool, error) {
	empty := 0
	for r.bufPos >= r.bufLen {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.buf)
		r.bufPos, r.bufLen = 0, n-n%r.channels

		switch {
		case errors.Is(err, io.EOF):
			r.srcDone = true
		case err != nil:
			return false, fmt.Errorf("resampling: %w", err)
		case r.bufLen == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(frame, r.buf[r.bufPos:r.bufPos+r.channels])
	r.bufPos += r.channels

	if r.alpha > 0 {
		if !r.warm {
			copy(r.state, frame)
			r.warm = true
		}
		for c, v := range frame {
			r.state[c] += r.alpha * (v - r.state[c])
			frame[c] = r.state[c]
		}
	}

	return true, nil
}
