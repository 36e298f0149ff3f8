// ABOUTME: Progress callback interface for long-running operations
// ABOUTME: Lets front ends observe per-track encode state

package tonie

// Callback receives progress events while tracks are encoded and a
// container is assembled. Implementations must not block for long; they
// are invoked synchronously from the encode loop.
type Callback interface {
	// FileStart announces that work on a track begins.
	FileStart(index int, name string)

	// Progress reports completion of the current track in percent.
	Progress(percent int)

	// FileDone announces that the current track finished.
	FileDone()

	// FileFailed reports a per-track failure. Depending on the encode
	// options the operation continues with the next track or aborts.
	FileFailed(msg string)

	// Warning reports a non-fatal condition.
	Warning(msg string)

	// PostProcessing announces a stage after per-track work, such as
	// stream assembly and hashing.
	PostProcessing(msg string)
}

// NopCallback ignores all events.
type NopCallback struct{}

func (NopCallback) FileStart(int, string) {}
func (NopCallback) Progress(int)          {}
func (NopCallback) FileDone()             {}
func (NopCallback) FileFailed(string)     {}
func (NopCallback) Warning(string)        {}
func (NopCallback) PostProcessing(string) {}
