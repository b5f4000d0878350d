// SPDX-License-Identifier: EPL-2.0

// Package viewer holds the state of an interactive detection session: a
// list of files, the current one, and the quantization exponent being
// tried. Each Analyze call re-runs detection for that combination.
package viewer

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/quantize"
	"github.com/ik5/audtrim/vad"
)

const (
	DefaultExponent = 5.5
	MinExponent     = 1.0
	MaxExponent     = 16.0
	ExponentStep    = 0.1
)

var ErrNoFiles = errors.New("no files to view")

// Reader loads a whole file. audtrim.Files satisfies it.
type Reader interface {
	Read(path string) (audio.Waveform, error)
}

type Options struct {
	Files  []string
	Reader Reader
	// Exponent to start with. Zero means DefaultExponent.
	Exponent float64
	// MaxValue is the quantization reference. Zero uses each file's peak.
	MaxValue  float64
	Detection vad.Config
	// Policy for files that fail to read. PolicySkip surfaces the error
	// from Analyze; PolicyPlaceholder analyses a silent stand-in.
	Policy batch.Policy
}

// Session is not safe for concurrent use.
type Session struct {
	files     []string
	reader    Reader
	index     int
	exponent  float64
	maxValue  float64
	detection vad.Config
	policy    batch.Policy

	loaded      int
	wave        audio.Waveform
	placeholder bool
}

func New(opts Options) (*Session, error) {
	if len(opts.Files) == 0 {
		return nil, ErrNoFiles
	}
	if opts.Reader == nil {
		return nil, errors.New("viewer: reader is required")
	}
	if err := opts.Detection.Validate(); err != nil {
		return nil, err
	}
	if opts.Policy == "" {
		opts.Policy = batch.PolicySkip
	}
	if err := opts.Policy.Validate(); err != nil {
		return nil, err
	}

	exponent := opts.Exponent
	if exponent == 0 {
		exponent = DefaultExponent
	}

	return &Session{
		files:     append([]string(nil), opts.Files...),
		reader:    opts.Reader,
		exponent:  clampExponent(exponent),
		maxValue:  opts.MaxValue,
		detection: opts.Detection,
		policy:    opts.Policy,
		loaded:    -1,
	}, nil
}

func (s *Session) Len() int          { return len(s.files) }
func (s *Session) Index() int        { return s.index }
func (s *Session) File() string      { return s.files[s.index] }
func (s *Session) Exponent() float64 { return s.exponent }

// Next moves to the following file, wrapping to the first.
func (s *Session) Next() {
	s.index = (s.index + 1) % len(s.files)
}

// Prev moves to the previous file, wrapping to the last.
func (s *Session) Prev() {
	s.index = (s.index - 1 + len(s.files)) % len(s.files)
}

func (s *Session) RaiseExponent() float64 {
	return s.SetExponent(s.exponent + ExponentStep)
}

func (s *Session) LowerExponent() float64 {
	return s.SetExponent(s.exponent - ExponentStep)
}

// SetExponent clamps e to [MinExponent, MaxExponent], rounds it to one
// decimal and returns the value kept.
func (s *Session) SetExponent(e float64) float64 {
	s.exponent = clampExponent(e)
	return s.exponent
}

func clampExponent(e float64) float64 {
	e = math.Round(e*10) / 10
	return min(MaxExponent, max(MinExponent, e))
}

// Analysis is one detection pass over the current file.
type Analysis struct {
	File        string
	Index       int
	Total       int
	Exponent    float64
	Levels      float64
	Step        float64 // 0 when the waveform is all zeros
	Peak        float64
	SampleRate  int
	Samples     int
	Seconds     float64
	Placeholder bool
	Result      vad.Result
}

// Name is the base name of the analysed file.
func (a Analysis) Name() string { return filepath.Base(a.File) }

// Analyze reads the current file if it is not loaded yet, quantizes it at
// the current exponent and runs detection.
func (s *Session) Analyze() (Analysis, error) {
	if err := s.load(); err != nil {
		return Analysis{}, err
	}

	q := quantize.Config{Exponent: s.exponent, MaxValue: s.maxValue}

	step, err := q.StepFor(s.wave.Samples)
	if err != nil && !errors.Is(err, quantize.ErrSilentWaveform) {
		return Analysis{}, err
	}

	res, err := vad.Detect(s.wave, q, s.detection)
	if err != nil {
		return Analysis{}, fmt.Errorf("detecting %s: %w", s.File(), err)
	}

	return Analysis{
		File:        s.File(),
		Index:       s.index,
		Total:       len(s.files),
		Exponent:    s.exponent,
		Levels:      q.Levels(),
		Step:        step,
		Peak:        quantize.Peak(s.wave.Samples),
		SampleRate:  s.wave.SampleRate,
		Samples:     s.wave.Len(),
		Seconds:     s.wave.Seconds(),
		Placeholder: s.placeholder,
		Result:      res,
	}, nil
}

func (s *Session) load() error {
	if s.loaded == s.index {
		return nil
	}

	w, err := s.reader.Read(s.File())
	placeholder := false
	if err != nil {
		if s.policy != batch.PolicyPlaceholder {
			return err
		}
		w, placeholder = batch.Placeholder(), true
	}

	s.wave, s.placeholder, s.loaded = w, placeholder, s.index

	return nil
}
