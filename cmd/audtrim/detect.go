// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"path/filepath"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/internal/cli"
	"github.com/ik5/audtrim/quantize"
	"github.com/ik5/audtrim/vad"
)

// DetectionFlags are shared by detect and view.
type DetectionFlags struct {
	Exponent   float64 `help:"Quantization exponent (levels = 2^N)." placeholder:"N"`
	MaxValue   float64 `help:"Quantization reference; 0 uses each file's peak." placeholder:"X"`
	MinSpeech  float64 `help:"Shortest speech run kept, in milliseconds." placeholder:"MS"`
	MinSilence float64 `help:"Shortest silence run kept, in milliseconds." placeholder:"MS"`
	SpeechPad  float64 `help:"Milliseconds added to both ends of each speech region." placeholder:"MS"`
}

func (f DetectionFlags) resolve(env *runEnv) (quantize.Config, vad.Config) {
	q := env.cfg.Quantize()
	override(env.set, "exponent", &q.Exponent, f.Exponent)
	override(env.set, "max-value", &q.MaxValue, f.MaxValue)

	d := env.cfg.Detection
	override(env.set, "min-speech", &d.MinSpeechDurationMs, f.MinSpeech)
	override(env.set, "min-silence", &d.MinSilenceDurationMs, f.MinSilence)
	override(env.set, "speech-pad", &d.SpeechPadMs, f.SpeechPad)

	return q, d
}

type DetectCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Audio files to analyse."`

	DetectionFlags `embed:""`
}

func (c *DetectCmd) Run(env *runEnv) error {
	q, d := c.resolve(env)
	if err := d.Validate(); err != nil {
		return err
	}

	files := audtrim.Files{TargetRate: env.cfg.Batch.TargetRate}

	failed := 0
	for _, path := range c.Files {
		w, err := files.Read(path)
		if err == nil {
			var res vad.Result
			res, err = vad.Detect(w, q, d)
			if err == nil {
				cli.PrintRegions(env.stdout, filepath.Base(path), res)
				continue
			}
		}

		failed++
		env.logger.Warn("detection failed", "file", path, "error", err)
		cli.PrintError(env.stderr, err.Error())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be analysed", failed, len(c.Files))
	}

	return nil
}
