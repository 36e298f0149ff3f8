// ABOUTME: Sentinel errors of the tonie package
// ABOUTME: Distinguishes corrupt headers from malformed audio regions

package tonie

import "errors"

var (
	// ErrCorruptHeader indicates the header region does not declare the
	// expected content length. The file is not a Tonie container.
	ErrCorruptHeader = errors.New("tonie: corrupt header")

	// ErrNoAudio indicates an operation needing the audio region was
	// called on a container read with readAudio=false.
	ErrNoAudio = errors.New("tonie: audio region not loaded")

	// ErrNoTracks indicates an encode or combine call without any usable
	// input track.
	ErrNoTracks = errors.New("tonie: no tracks to process")
)
