// ABOUTME: Tests for the TUI run loop and callback bridge
// ABOUTME: Covers result passthrough and user abort mid-encode

package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRunReturnsEncodeResult(t *testing.T) {
	wantErr := errors.New("track failed")
	err := Run(func(cb *Callback) error {
		cb.FileStart(0, "a.mp3")
		cb.Progress(50)
		cb.FileDone()
		return wantErr
	}, tea.WithInput(strings.NewReader("")), tea.WithoutRenderer())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the encode error back, got %v", err)
	}

	err = Run(func(cb *Callback) error {
		return nil
	}, tea.WithInput(strings.NewReader("")), tea.WithoutRenderer())
	if err != nil {
		t.Errorf("expected nil for a finished encode, got %v", err)
	}
}

func TestRunAbortedByUser(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	done := make(chan error, 1)
	go func() {
		// The encode blocks, so only the q keypress can end the run.
		done <- Run(func(cb *Callback) error {
			cb.FileStart(0, "slow.flac")
			<-release
			return nil
		}, tea.WithInput(strings.NewReader("q")), tea.WithoutRenderer())
	}()

	select {
	case err := <-done:
		if !errors.Is(err, ErrAborted) {
			t.Errorf("expected ErrAborted, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after quit")
	}
}
