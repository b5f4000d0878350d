// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/internal/audiotest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"aif", "aifc", "aiff", "flac", "mp3", "ogg", "wav"}
	if got := DefaultRegistry().Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}
}

func TestFiles_WriteRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "tone.wav")

	w := audio.Waveform{
		Samples:    audiotest.Concat(audiotest.Zeros(16000, 0.1), audiotest.Tone(16000, 0.2, 300, 0.7)),
		SampleRate: 16000,
	}

	files := Files{}
	if err := files.Write(path, w); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := files.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if got.SampleRate != 16000 || got.Len() != w.Len() {
		t.Fatalf("Read() = %d samples at %d Hz, want %d at 16000", got.Len(), got.SampleRate, w.Len())
	}
	for i := range w.Samples {
		if math.Abs(got.Samples[i]-w.Samples[i]) > 1.0/8192 {
			t.Fatalf("sample %d = %v, want %v", i, got.Samples[i], w.Samples[i])
		}
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries, want only the output file", len(entries))
	}
}

func TestFiles_ReadResamples(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "in.wav")
	w := audio.Waveform{Samples: audiotest.Tone(16000, 0.5, 200, 0.5), SampleRate: 16000}
	if err := (Files{}).Write(path, w); err != nil {
		t.Fatal(err)
	}

	got, err := Files{TargetRate: 8000}.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", got.SampleRate)
	}
	if got.Len() != 4000 {
		t.Errorf("Len() = %d, want 4000", got.Len())
	}
}

func TestFiles_ReadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("definitely not RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		path        string
		unsupported bool
	}{
		{"missing", filepath.Join(dir, "missing.wav"), false},
		{"corrupt", garbage, false},
		{"extension", text, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Files{}.Read(tt.path)
			if !errors.Is(err, ErrUnreadableFile) {
				t.Fatalf("Read() error = %v, want ErrUnreadableFile", err)
			}
			if tt.unsupported != errors.Is(err, audio.ErrUnsupportedFormat) {
				t.Errorf("errors.Is(err, ErrUnsupportedFormat) = %v, want %v", !tt.unsupported, tt.unsupported)
			}
		})
	}
}

func TestFiles_WriteErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	w := audio.Silence(100, 8000)

	if err := (Files{}).Write(filepath.Join(blocker, "out.wav"), w); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Write() under a file error = %v, want ErrWriteFailed", err)
	}

	if err := (Files{BitDepth: 12}).Write(filepath.Join(dir, "odd.wav"), w); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Write() with 12 bits error = %v, want ErrWriteFailed", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "odd.wav")); !os.IsNotExist(err) {
		t.Errorf("failed write left a file behind: %v", err)
	}

	if err := (Files{}).Write(filepath.Join(dir, "norate.wav"), audio.Waveform{Samples: []float64{0}}); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Write() without a rate error = %v, want ErrWriteFailed", err)
	}
}
