// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/wav"
)

// Example_roundTrip writes a short clip to disk and decodes it again.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "clip.wav")
	out, err := os.Create(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := wav.Encode(out, 16000, wav.DefaultBitDepth, make([]float64, 1600)); err != nil {
		fmt.Println(err)
		return
	}
	out.Close()

	in, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer in.Close()

	src, err := wav.Decoder{}.Decode(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	w, err := audio.Collect(src)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d samples at %d Hz (%.2fs)\n", w.Len(), w.SampleRate, w.Seconds())
	// Output: 1600 samples at 16000 Hz (0.10s)
}
