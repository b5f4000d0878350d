// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions lists the audio file extensions picked up by Walk.
var Extensions = []string{".wav", ".flac", ".ogg", ".aiff", ".aif", ".aifc", ".mp3"}

// IsAudioFile reports whether name carries one of Extensions, ignoring case.
func IsAudioFile(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

// Walk lists the audio files under root as paths relative to root, in
// lexical order. Only the top level is read unless recursive is set.
func Walk(root string, recursive bool) ([]string, error) {
	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", root, err)
		}

		var files []string
		for _, e := range entries {
			if e.Type().IsRegular() && IsAudioFile(e.Name()) {
				files = append(files, e.Name())
			}
		}

		return files, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !IsAudioFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return files, nil
}

// OutputPath maps a path relative to the input root onto outRoot, replacing
// the extension with .wav.
func OutputPath(outRoot, rel string) string {
	return filepath.Join(outRoot, strings.TrimSuffix(rel, filepath.Ext(rel))+".wav")
}

// Job is one input file and where its output goes.
type Job struct {
	Input  string
	Rel    string
	Output string
}

// Plan walks inRoot and pairs every audio file with its output path.
func Plan(inRoot, outRoot string, recursive bool) ([]Job, error) {
	rels, err := Walk(inRoot, recursive)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, len(rels))
	for i, rel := range rels {
		jobs[i] = Job{
			Input:  filepath.Join(inRoot, rel),
			Rel:    rel,
			Output: OutputPath(outRoot, rel),
		}
	}

	return jobs, nil
}
