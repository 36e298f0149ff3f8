// ABOUTME: Bubbletea model for the encode progress TUI
// ABOUTME: Tracks per-file encode state and renders a progress view

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// track state values
const (
	statePending  = "pending"
	stateEncoding = "encoding"
	stateDone     = "done"
	stateFailed   = "failed"
)

type trackState struct {
	name    string
	state   string
	percent int
	errMsg  string
}

// Model represents the encode TUI state
type Model struct {
	tracks   []trackState
	current  int
	stage    string
	warnings []string
	finished bool
	err      error
	width    int
}

// NewModel creates a fresh encode progress model
func NewModel() Model {
	return Model{current: -1}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case FileStartMsg:
		for len(m.tracks) <= msg.Index {
			m.tracks = append(m.tracks, trackState{state: statePending})
		}
		m.tracks[msg.Index] = trackState{name: msg.Name, state: stateEncoding}
		m.current = msg.Index
	case ProgressMsg:
		if m.current >= 0 && m.current < len(m.tracks) {
			m.tracks[m.current].percent = int(msg)
		}
	case FileDoneMsg:
		if m.current >= 0 && m.current < len(m.tracks) {
			m.tracks[m.current].state = stateDone
			m.tracks[m.current].percent = 100
		}
	case FileFailedMsg:
		if m.current >= 0 && m.current < len(m.tracks) {
			m.tracks[m.current].state = stateFailed
			m.tracks[m.current].errMsg = string(msg)
		}
	case WarningMsg:
		m.warnings = append(m.warnings, string(msg))
	case StageMsg:
		m.stage = string(msg)
	case FinishedMsg:
		m.finished = true
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	s := "Encoding tracks\n\n"

	for i, t := range m.tracks {
		var status string
		switch t.state {
		case stateEncoding:
			status = fmt.Sprintf("[%s] %3d%%", renderBar(t.percent, 100, 20), t.percent)
		case stateDone:
			status = "done"
		case stateFailed:
			status = "failed: " + t.errMsg
		default:
			status = "waiting"
		}
		s += fmt.Sprintf("  %2d. %-32s %s\n", i+1, truncate(t.name, 32), status)
	}

	if m.stage != "" {
		s += fmt.Sprintf("\n%s...\n", m.stage)
	}
	for _, w := range m.warnings {
		s += fmt.Sprintf("\nwarning: %s", w)
	}
	if len(m.warnings) > 0 {
		s += "\n"
	}

	if m.finished {
		if m.err != nil {
			s += fmt.Sprintf("\nfailed: %v\n", m.err)
		} else {
			s += "\nall tracks encoded\n"
		}
	} else {
		s += "\nq: abort\n"
	}

	return s
}

// Err returns the terminal error once the encode has finished.
func (m Model) Err() error {
	return m.err
}

// TUI messages mirroring the encode callback events.
type (
	FileStartMsg struct {
		Index int
		Name  string
	}
	ProgressMsg   int
	FileDoneMsg   struct{}
	FileFailedMsg string
	WarningMsg    string
	StageMsg      string
	FinishedMsg   struct{ Err error }
)

// Utility functions
func renderBar(value, max, width int) string {
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}
