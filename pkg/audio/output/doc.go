// ABOUTME: Audio output package documentation
// ABOUTME: PCM playback abstraction backed by oto

// Package output plays PCM audio on the local machine. It backs the
// preview playback of the CLI; the container engine itself never touches
// an audio device.
package output
