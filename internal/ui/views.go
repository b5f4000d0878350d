// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2E86AB"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	speechStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#C73E1D"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true).
			MarginTop(1)
)

// lines used by everything except the region list
const chromeLines = 12

func renderView(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "))
		b.WriteString(m.err.Error())
		b.WriteString("\n")
	} else {
		b.WriteString(renderStats(m))
		b.WriteString("\n")
		b.WriteString(renderRegions(m))
	}

	b.WriteString(helpStyle.Render("←/→ file  ↑/↓ exponent  q quit"))
	b.WriteString("\n")

	return b.String()
}

func renderHeader(m Model) string {
	s := m.session
	name := fmt.Sprintf("%s (%d/%d)", filepath.Base(s.File()), s.Index()+1, s.Len())

	return titleStyle.Render("audtrim viewer") + "  " + name
}

func renderStats(m Model) string {
	a := m.analysis
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Exponent", fmt.Sprintf("%.1f (2^%.1f = %.1f levels)", a.Exponent, a.Exponent, a.Levels))
	if a.Step > 0 {
		row("Step", fmt.Sprintf("%.6f (peak %.4f)", a.Step, a.Peak))
	} else {
		row("Step", "n/a (silent)")
	}
	row("Length", fmt.Sprintf("%.2fs, %d samples at %d Hz", a.Seconds, a.Samples, a.SampleRate))
	row("Regions", fmt.Sprintf("%d speech, %d silence", len(a.Result.Speech), len(a.Result.Silence)))
	if a.Placeholder {
		row("Note", "file could not be read, showing placeholder")
	}

	return b.String()
}

func renderRegions(m Model) string {
	res := m.analysis.Result
	if len(res.Speech) == 0 {
		return labelStyle.Render("no speech detected") + "\n"
	}

	limit := len(res.Speech)
	if m.Height > chromeLines {
		limit = min(limit, m.Height-chromeLines)
	}

	var b strings.Builder
	for i, r := range res.Speech[:limit] {
		fmt.Fprintf(&b, "%3d  %s\n", i+1, speechStyle.Render(fmt.Sprintf("%8.3fs - %8.3fs", r.StartSeconds(res.SampleRate), r.EndSeconds(res.SampleRate))))
	}
	if rest := len(res.Speech) - limit; rest > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("     ... %d more", rest)))
		b.WriteString("\n")
	}

	return b.String()
}
