// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#2E86AB")
	accentColor  = lipgloss.Color("#F18F01")
	okColor      = lipgloss.Color("#00AA00")
	errorColor   = lipgloss.Color("#C73E1D")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	WarnStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	OKStyle = lipgloss.NewStyle().
		Foreground(okColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)
)

func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render("audtrim"))
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
}

func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}
