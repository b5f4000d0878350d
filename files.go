// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/aiff"
	"github.com/ik5/audtrim/formats/flac"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/vorbis"
	"github.com/ik5/audtrim/formats/wav"
)

// DefaultRegistry returns a registry with every decoder this module ships.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("flac", flac.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aifc", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})

	return r
}

// Files reads and writes whole waveforms. The zero value is ready to use.
type Files struct {
	// Registry picks decoders by extension. Nil means DefaultRegistry.
	Registry *audio.Registry
	// TargetRate resamples on read when positive.
	TargetRate int
	// BitDepth of written files. Zero means 16.
	BitDepth int
}

// Read decodes path into a mono waveform. Every failure wraps
// ErrUnreadableFile.
func (f Files) Read(path string) (audio.Waveform, error) {
	registry := f.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	dec, err := registry.ForPath(path)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	defer file.Close()

	src, err := dec.Decode(file)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}
	defer src.Close()

	stream := audio.Source(audio.NewMonoMixer(src))
	if f.TargetRate > 0 && f.TargetRate != src.SampleRate() {
		r, err := audio.NewResampler(stream, f.TargetRate)
		if err != nil {
			return audio.Waveform{}, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
		}
		stream = r
	}

	w, err := audio.Collect(stream)
	if err != nil {
		return audio.Waveform{}, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, err)
	}
	if w.Len() == 0 {
		return audio.Waveform{}, fmt.Errorf("%w: %s: %w", ErrUnreadableFile, path, audio.ErrEmptyWaveform)
	}

	return w, nil
}

// Write stores w at path as a mono PCM WAV, creating parent directories.
// The file is encoded next to its destination and renamed into place, so a
// failed write never leaves a truncated file at path. Every failure wraps
// ErrWriteFailed.
func (f Files) Write(path string, w audio.Waveform) (err error) {
	if err := w.Validate(); err != nil && !errors.Is(err, audio.ErrEmptyWaveform) {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}

	bitDepth := f.BitDepth
	if bitDepth == 0 {
		bitDepth = wav.DefaultBitDepth
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(dir, ".audtrim-*.wav")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := wav.Encode(tmp, w.SampleRate, bitDepth, w.Samples); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
