// SPDX-License-Identifier: EPL-2.0

package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/batch"
	"github.com/ik5/audtrim/internal/ui"
	"github.com/ik5/audtrim/viewer"
)

type ViewCmd struct {
	Dir string `arg:"" type:"existingdir" help:"Directory of recordings."`

	Recursive    bool   `short:"r" help:"Descend into subdirectories."`
	OnUnreadable string `help:"What to show for unreadable files: skip (error) or placeholder." placeholder:"POLICY"`

	DetectionFlags `embed:""`
}

func (c *ViewCmd) Run(env *runEnv) error {
	q, d := c.resolve(env)

	recursive := env.cfg.Batch.Recursive
	override(env.set, "recursive", &recursive, c.Recursive)

	policy := env.cfg.Batch.OnUnreadable
	if env.set["on-unreadable"] {
		p, err := batch.ParsePolicy(c.OnUnreadable)
		if err != nil {
			return err
		}
		policy = p
	}

	rels, err := batch.Walk(c.Dir, recursive)
	if err != nil {
		return err
	}
	paths := make([]string, len(rels))
	for i, rel := range rels {
		paths[i] = filepath.Join(c.Dir, rel)
	}

	session, err := viewer.New(viewer.Options{
		Files:     paths,
		Reader:    audtrim.Files{TargetRate: env.cfg.Batch.TargetRate},
		Exponent:  q.Exponent,
		MaxValue:  q.MaxValue,
		Detection: d,
		Policy:    policy,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(ui.NewModel(session), tea.WithAltScreen(), tea.WithContext(env.ctx)).Run()

	return err
}
