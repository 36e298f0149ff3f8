// ABOUTME: Output interface definition
// ABOUTME: Common interface for audio playback backends

package output

// Output plays PCM audio
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write outputs audio samples (blocks until written)
	Write(samples []int32) error

	// Drain blocks until everything written has been played. No Write
	// may follow it.
	Drain() error

	// SetVolume sets the volume (0-100)
	SetVolume(volume int)

	// Close releases output resources
	Close() error
}
