// ABOUTME: Audio type definitions and sample conversions
// ABOUTME: Defines decoded tracks and 16/24-bit sample helpers

package audio

import "time"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Track is a fully decoded audio file: interleaved PCM samples in 24-bit
// range (int32 to support both 16-bit and 24-bit sources).
type Track struct {
	Samples    []int32
	SampleRate int
	Channels   int
}

// Duration returns the playback length of the track.
func (t *Track) Duration() time.Duration {
	if t.SampleRate == 0 || t.Channels == 0 {
		return 0
	}
	frames := len(t.Samples) / t.Channels
	return time.Duration(frames) * time.Second / time.Duration(t.SampleRate)
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit consumers)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit (or 16-bit) to 16-bit range
	return int16(sample >> 8)
}

// SampleFromInt16 converts int16 sample to int32 (left-justified in 24-bit)
func SampleFromInt16(sample int16) int32 {
	// Left-shift to position 16-bit value in upper bits
	return int32(sample) << 8
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}
