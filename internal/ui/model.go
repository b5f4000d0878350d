// SPDX-License-Identifier: EPL-2.0

// Package ui is the bubbletea front end of the interactive viewer.
//
// Left and right step through the files, up and down change the
// quantization exponent, q quits. Every change re-runs detection and the
// view lists the resulting speech regions.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ik5/audtrim/viewer"
)

// Model drives a viewer.Session. Analysis runs inside Update so the session
// is only ever touched from the bubbletea event loop.
type Model struct {
	session  *viewer.Session
	analysis viewer.Analysis
	err      error
	ready    bool

	Width  int
	Height int
}

func NewModel(session *viewer.Session) Model {
	return Model{session: session}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l":
			m.session.Next()
		case "left", "h":
			m.session.Prev()
		case "up", "k":
			m.session.RaiseExponent()
		case "down", "j":
			m.session.LowerExponent()
		default:
			return m, nil
		}
		return m.refresh(), nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case refreshMsg:
		return m.refresh(), nil

	case AnalysisMsg:
		m.analysis, m.err, m.ready = msg.Analysis, msg.Err, true
	}

	return m, nil
}

func (m Model) refresh() Model {
	a, err := m.session.Analyze()
	m.analysis, m.err, m.ready = a, err, true

	return m
}

func (m Model) View() string {
	if !m.ready {
		return "Loading...\n"
	}

	return renderView(m)
}
