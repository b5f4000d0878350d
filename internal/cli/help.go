// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpDescStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				MarginTop(1)

	helpFlagStyle = lipgloss.NewStyle().
			Foreground(okColor).
			Bold(true)

	helpArgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AAAA")).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)

// StyledHelpPrinter renders kong help with lipgloss. It covers the root
// command as well as the selected subcommand.
func StyledHelpPrinter(kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Model.Node
		if sel := ctx.Selected(); sel != nil {
			node = sel
		}

		var sb strings.Builder

		sb.WriteString(TitleStyle.Render("audtrim"))
		sb.WriteString("\n")
		help := node.Help
		if help == "" {
			help = ctx.Model.Help
		}
		if help != "" {
			sb.WriteString(helpDescStyle.Render(help))
			sb.WriteString("\n")
		}

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(usage(ctx, node))
		sb.WriteString("\n")

		if cmds := commands(node); len(cmds) > 0 {
			writeSection(&sb, "Commands:", cmds, helpArgStyle)
		}
		if args := arguments(node); len(args) > 0 {
			writeSection(&sb, "Arguments:", args, helpArgStyle)
		}

		flags := flagEntries(node.Flags)
		if node != ctx.Model.Node {
			flags = append(flags, flagEntries(ctx.Model.Node.Flags)...)
		}
		writeSection(&sb, "Flags:", flags, helpFlagStyle)

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())

		return nil
	}
}

type entry struct {
	name       string
	help       string
	defaultVal string
}

func writeSection(sb *strings.Builder, title string, entries []entry, style lipgloss.Style) {
	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(style.Render(e.name))
		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}
		if e.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + e.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func usage(ctx *kong.Context, node *kong.Node) string {
	parts := []string{ctx.Model.Name}
	if node != ctx.Model.Node {
		parts = append(parts, node.Path())
	}

	parts = append(parts, "[flags]")
	if len(commands(node)) > 0 {
		parts = append(parts, "<command>")
	}
	for _, arg := range node.Positional {
		parts = append(parts, arg.Summary())
	}

	return strings.Join(parts, " ")
}

func commands(node *kong.Node) []entry {
	var out []entry
	for _, child := range node.Children {
		if child.Type != kong.CommandNode || child.Hidden {
			continue
		}
		out = append(out, entry{name: child.Name, help: child.Help})
	}

	return out
}

func arguments(node *kong.Node) []entry {
	out := make([]entry, 0, len(node.Positional))
	for _, arg := range node.Positional {
		out = append(out, entry{name: arg.Summary(), help: arg.Help})
	}

	return out
}

func flagEntries(flags []*kong.Flag) []entry {
	var out []entry
	for _, f := range flags {
		if f.Hidden {
			continue
		}

		name := "--" + f.Name
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		out = append(out, entry{
			name:       name,
			help:       f.Help,
			defaultVal: f.Default,
		})
	}

	return out
}
