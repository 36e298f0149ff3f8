// ABOUTME: Log-based progress callback for non-TUI runs
// ABOUTME: Mirrors encode events onto the standard logger

package cmd

import "log"

// logCallback reports encode progress through the standard logger. It is
// the fallback when the TUI is disabled.
type logCallback struct {
	name     string
	lastStep int
}

func (c *logCallback) FileStart(index int, name string) {
	c.name = name
	c.lastStep = -1
	log.Printf("track %d: %s", index+1, name)
}

func (c *logCallback) Progress(percent int) {
	// Log in 25% steps to keep the output readable.
	step := percent / 25
	if step > c.lastStep {
		c.lastStep = step
		log.Printf("  %s: %d%%", c.name, percent)
	}
}

func (c *logCallback) FileDone() {
	log.Printf("  %s: done", c.name)
}

func (c *logCallback) FileFailed(msg string) {
	log.Printf("  %s: failed: %s", c.name, msg)
}

func (c *logCallback) Warning(msg string) {
	log.Printf("warning: %s", msg)
}

func (c *logCallback) PostProcessing(msg string) {
	log.Printf("%s...", msg)
}
