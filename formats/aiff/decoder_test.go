// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	samples []int
	offset  int
	fail    bool
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.fail {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(buf.Data, m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, data := range [][]byte{[]byte("This is not AIFF data"), {}} {
		_, err := Decoder{}.Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrNotAiffFile) {
			t.Errorf("Decode(%q) error = %v, want ErrNotAiffFile", data, err)
		}
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bitDepth int
		samples  []int
		want     []float32
	}{
		{"16 bit", 16, []int{0, 16384, -16384, -32768}, []float32{0, 0.5, -0.5, -1}},
		{"24 bit", 24, []int{0, 4194304, -8388608}, []float32{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &source{
				dec:        &mockAiffReader{samples: tt.samples},
				sampleRate: 44100,
				channels:   1,
				bitDepth:   tt.bitDepth,
			}

			buf := make([]float32, 10)
			n, err := src.ReadSamples(buf)
			if err != io.EOF {
				t.Errorf("ReadSamples() error = %v, want io.EOF on short read", err)
			}
			if n != len(tt.want) {
				t.Fatalf("ReadSamples() n = %d, want %d", n, len(tt.want))
			}

			for i := range tt.want {
				if math.Abs(float64(buf[i]-tt.want[i])) > 1e-6 {
					t.Errorf("buf[%d] = %v, want %v", i, buf[i], tt.want[i])
				}
			}

			n, err = src.ReadSamples(buf)
			if n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after end = %d, %v, want 0, io.EOF", n, err)
			}
		})
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockAiffReader{fail: true}, sampleRate: 8000, channels: 1, bitDepth: 16}

	_, err := src.ReadSamples(make([]float32, 4))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
