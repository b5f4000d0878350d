// SPDX-License-Identifier: EPL-2.0

package audtrim_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/internal/audiotest"
	"github.com/ik5/audtrim/trim"
)

func Example() {
	dir, err := os.MkdirTemp("", "audtrim-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	files := audtrim.Files{}

	in := filepath.Join(dir, "take.wav")
	take := audio.Waveform{
		Samples: audiotest.Concat(
			audiotest.Zeros(8000, 1.5),
			audiotest.Tone(8000, 1, 100, 0.5),
			audiotest.Zeros(8000, 1.5),
		),
		SampleRate: 8000,
	}
	if err := files.Write(in, take); err != nil {
		fmt.Println(err)
		return
	}

	w, err := files.Read(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	out, _, err := trim.Trim(w, trim.DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := files.Write(filepath.Join(dir, "trimmed", "take.wav"), out); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2fs -> %.2fs\n", w.Seconds(), out.Seconds())
	// Output:
	// 4.00s -> 2.01s
}
