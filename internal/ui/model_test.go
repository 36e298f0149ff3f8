// ABOUTME: Tests for the encode TUI model
// ABOUTME: Tests message handling, state transitions and render helpers

package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewModel(t *testing.T) {
	model := NewModel()

	if len(model.tracks) != 0 {
		t.Error("expected no tracks initially")
	}

	if model.finished {
		t.Error("expected finished to be false initially")
	}
}

func TestFileLifecycle(t *testing.T) {
	model := NewModel()

	model = apply(t, model, FileStartMsg{Index: 0, Name: "song.mp3"})
	if len(model.tracks) != 1 {
		t.Fatalf("expected 1 track, got %d", len(model.tracks))
	}
	if model.tracks[0].state != stateEncoding {
		t.Errorf("expected encoding state, got %q", model.tracks[0].state)
	}

	model = apply(t, model, ProgressMsg(40))
	if model.tracks[0].percent != 40 {
		t.Errorf("expected 40%%, got %d%%", model.tracks[0].percent)
	}

	model = apply(t, model, FileDoneMsg{})
	if model.tracks[0].state != stateDone {
		t.Errorf("expected done state, got %q", model.tracks[0].state)
	}
	if model.tracks[0].percent != 100 {
		t.Errorf("done track not at 100%%, got %d%%", model.tracks[0].percent)
	}
}

func TestFileFailure(t *testing.T) {
	model := NewModel()

	model = apply(t, model, FileStartMsg{Index: 0, Name: "broken.flac"})
	model = apply(t, model, FileFailedMsg("unsupported bit depth"))

	if model.tracks[0].state != stateFailed {
		t.Errorf("expected failed state, got %q", model.tracks[0].state)
	}
	if model.tracks[0].errMsg != "unsupported bit depth" {
		t.Errorf("error message not stored: %q", model.tracks[0].errMsg)
	}

	if !strings.Contains(model.View(), "unsupported bit depth") {
		t.Error("failure message not rendered")
	}
}

func TestSparseFileStartIndexes(t *testing.T) {
	model := NewModel()

	// A skipped track means the next FileStart arrives with a gap.
	model = apply(t, model, FileStartMsg{Index: 2, Name: "third.wav"})

	if len(model.tracks) != 3 {
		t.Fatalf("expected 3 track slots, got %d", len(model.tracks))
	}
	if model.tracks[0].state != statePending {
		t.Errorf("gap slot not pending: %q", model.tracks[0].state)
	}
	if model.tracks[2].name != "third.wav" {
		t.Errorf("started track not recorded: %q", model.tracks[2].name)
	}
}

func TestWarningsAndStage(t *testing.T) {
	model := NewModel()

	model = apply(t, model, WarningMsg("skipping broken.mp3"))
	model = apply(t, model, StageMsg("assembling audio stream"))

	view := model.View()
	if !strings.Contains(view, "skipping broken.mp3") {
		t.Error("warning not rendered")
	}
	if !strings.Contains(view, "assembling audio stream") {
		t.Error("stage not rendered")
	}
}

func TestFinishedQuits(t *testing.T) {
	model := NewModel()

	next, cmd := model.Update(FinishedMsg{Err: nil})
	if cmd == nil {
		t.Fatal("expected quit command on finish")
	}
	if !next.(Model).finished {
		t.Error("finished flag not set")
	}
	if !strings.Contains(next.(Model).View(), "all tracks encoded") {
		t.Error("success message not rendered")
	}
}

func TestQuitKey(t *testing.T) {
	model := NewModel()

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command for q")
	}
}

func TestTruncateFunction(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"this is longer than allowed", 10, "this is..."},
		{"", 10, ""},
		{"abcd", 4, "abcd"},
		{"abcde", 4, "a..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q",
				tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestRenderBar(t *testing.T) {
	if bar := renderBar(0, 100, 10); strings.Contains(bar, "█") {
		t.Errorf("empty bar contains fill: %q", bar)
	}
	if bar := renderBar(100, 100, 10); strings.Contains(bar, "░") {
		t.Errorf("full bar contains blanks: %q", bar)
	}
	if bar := renderBar(50, 100, 10); strings.Count(bar, "█") != 5 {
		t.Errorf("half bar wrong: %q", bar)
	}
}
