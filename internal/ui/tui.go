// ABOUTME: TUI initialization and encode callback bridge
// ABOUTME: Wraps bubbletea program and forwards encode events to it

package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned by Run when the user quits the TUI before the
// encode has finished. The caller must not touch its partial results.
var ErrAborted = errors.New("ui: aborted by user")

// Run starts the progress TUI, invokes encode with a callback wired to
// it and blocks until the encode finishes or the user aborts. The error
// returned by encode is passed through; a user abort before the encode
// finished yields ErrAborted.
func Run(encode func(cb *Callback) error, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(), opts...)

	go func() {
		err := encode(&Callback{program: p})
		p.Send(FinishedMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	m := final.(Model)
	if !m.finished {
		return ErrAborted
	}
	return m.Err()
}

// Callback forwards encode progress events into the TUI event loop. It
// satisfies the tonie.Callback interface.
type Callback struct {
	program *tea.Program
}

func (c *Callback) FileStart(index int, name string) {
	c.program.Send(FileStartMsg{Index: index, Name: name})
}

func (c *Callback) Progress(percent int) {
	c.program.Send(ProgressMsg(percent))
}

func (c *Callback) FileDone() {
	c.program.Send(FileDoneMsg{})
}

func (c *Callback) FileFailed(msg string) {
	c.program.Send(FileFailedMsg(msg))
}

func (c *Callback) Warning(msg string) {
	c.program.Send(WarningMsg(msg))
}

func (c *Callback) PostProcessing(msg string) {
	c.program.Send(StageMsg(msg))
}
