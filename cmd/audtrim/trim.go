// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/internal/cli"
)

type TrimCmd struct {
	Input  string `arg:"" type:"existingdir" help:"Directory of recordings."`
	Output string `arg:"" type:"path" help:"Directory for the trimmed WAV files."`

	Exponent        float64 `help:"Quantization exponent for the endpoint search (levels = 2^N)." placeholder:"N"`
	MaxValue        float64 `help:"Quantization reference; 0 uses each file's peak." placeholder:"X"`
	EndpointPadding float64 `help:"Seconds kept around the active span." placeholder:"SEC"`
	FadeDuration    float64 `help:"Fade-in and fade-out length in seconds." placeholder:"SEC"`
	FadeSteepness   float64 `help:"Sigmoid range of the fades." placeholder:"S"`
	FrontSilence    float64 `help:"Seconds of silence added before the speech." placeholder:"SEC"`
	BackSilence     float64 `help:"Seconds of silence added after the speech." placeholder:"SEC"`
	StrictFade      bool    `help:"Fail a file whose fades do not fit instead of shortening them."`

	Recursive    bool   `short:"r" help:"Descend into subdirectories."`
	Workers      int    `short:"j" help:"Files processed in parallel; 0 uses every CPU." placeholder:"N"`
	OnUnreadable string `help:"What to do with unreadable files: skip or placeholder." placeholder:"POLICY"`
	BitDepth     int    `help:"Bit depth of the written WAV files: 16, 24 or 32." placeholder:"BITS"`
	TargetRate   int    `help:"Resample inputs to this rate before trimming; 0 keeps the original." placeholder:"HZ"`
}

func (c *TrimCmd) options(env *runEnv) (batch.Options, audtrim.Files, error) {
	t := env.cfg.Trim
	override(env.set, "exponent", &t.Exponent, c.Exponent)
	override(env.set, "max-value", &t.MaxValue, c.MaxValue)
	override(env.set, "endpoint-padding", &t.EndpointPaddingSec, c.EndpointPadding)
	override(env.set, "fade-duration", &t.FadeDurationSec, c.FadeDuration)
	override(env.set, "fade-steepness", &t.FadeSteepness, c.FadeSteepness)
	override(env.set, "front-silence", &t.FrontSilenceSec, c.FrontSilence)
	override(env.set, "back-silence", &t.BackSilenceSec, c.BackSilence)
	override(env.set, "strict-fade", &t.StrictFade, c.StrictFade)

	b := env.cfg.Batch
	override(env.set, "recursive", &b.Recursive, c.Recursive)
	override(env.set, "workers", &b.Workers, c.Workers)
	override(env.set, "bit-depth", &b.BitDepth, c.BitDepth)
	override(env.set, "target-rate", &b.TargetRate, c.TargetRate)
	if env.set["on-unreadable"] {
		p, err := batch.ParsePolicy(c.OnUnreadable)
		if err != nil {
			return batch.Options{}, audtrim.Files{}, err
		}
		b.OnUnreadable = p
	}

	if err := b.Validate(); err != nil {
		return batch.Options{}, audtrim.Files{}, err
	}

	opts := batch.Options{
		InputDir:  c.Input,
		OutputDir: c.Output,
		Recursive: b.Recursive,
		Workers:   b.Workers,
		Policy:    b.OnUnreadable,
		Trim:      t,
	}
	files := audtrim.Files{BitDepth: b.BitDepth, TargetRate: b.TargetRate}

	return opts, files, nil
}

func (c *TrimCmd) Run(env *runEnv) error {
	opts, files, err := c.options(env)
	if err != nil {
		return err
	}

	p, err := batch.NewProcessor(opts, files, files, env.logger)
	if err != nil {
		return err
	}

	sum, err := p.Run(env.ctx)
	cli.PrintSummary(env.stdout, sum)
	if err != nil {
		return err
	}

	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", sum.Failed, len(sum.Results))
	}

	return nil
}
