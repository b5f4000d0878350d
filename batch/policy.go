// SPDX-License-Identifier: EPL-2.0

package batch

import (
	"fmt"
	"strings"

	"github.com/ik5/audtrim/audio"
)

// Policy decides what happens to a file that cannot be read.
type Policy string

const (
	// PolicySkip logs the file and moves on.
	PolicySkip Policy = "skip"
	// PolicyPlaceholder trims a short silent clip in its place, so every
	// input still gets an output.
	PolicyPlaceholder Policy = "placeholder"
)

const (
	PlaceholderSamples = 48
	PlaceholderRate    = 48000
)

func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return PolicySkip, nil
	}

	if err := p.Validate(); err != nil {
		return "", err
	}

	return p, nil
}

func (p Policy) Validate() error {
	switch p {
	case PolicySkip, PolicyPlaceholder:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidPolicy, string(p))
}

// Placeholder is the waveform substituted under PolicyPlaceholder.
func Placeholder() audio.Waveform {
	return audio.Silence(PlaceholderSamples, PlaceholderRate)
}
