// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{16, 24, 32} {
		t.Run(fmt.Sprintf("%dbit", depth), func(t *testing.T) {
			t.Parallel()

			samples := []float64{0, 0.25, -0.25, 0.999, -1, 0.5}
			path := filepath.Join(t.TempDir(), "out.wav")

			f, err := os.Create(path)
			if err != nil {
				t.Fatal(err)
			}
			if err := Encode(f, 22050, depth, samples); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			f.Close()

			in, err := os.Open(path)
			if err != nil {
				t.Fatal(err)
			}
			defer in.Close()

			src, err := Decoder{}.Decode(in)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if src.SampleRate() != 22050 || src.Channels() != 1 {
				t.Fatalf("format = %d Hz / %d ch, want 22050 Hz / 1 ch", src.SampleRate(), src.Channels())
			}

			buf := make([]float32, 16)
			var got []float32
			for {
				n, err := src.ReadSamples(buf)
				got = append(got, buf[:n]...)
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("ReadSamples() error = %v", err)
				}
			}

			if len(got) != len(samples) {
				t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
			}
			for i := range samples {
				if math.Abs(float64(got[i])-samples[i]) > 0.001 {
					t.Errorf("sample[%d] = %v, want %v", i, got[i], samples[i])
				}
			}
		})
	}
}

func TestEncode_ClampsOutOfRange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Encode(f, 8000, 16, []float64{3, -3}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
}

func TestEncode_InvalidArguments(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Encode(f, 8000, 12, []float64{0}); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Encode(bitDepth=12) error = %v, want ErrUnsupportedBitDepth", err)
	}

	if err := Encode(f, 0, 16, []float64{0}); !errors.Is(err, ErrUnsupportedWavLayout) {
		t.Errorf("Encode(rate=0) error = %v, want ErrUnsupportedWavLayout", err)
	}
}
