// ABOUTME: Opus packet TOC inspection
// ABOUTME: Computes packet durations in 48kHz samples and detects padding packets

package opus

import (
	"errors"
	"fmt"
)

// SampleRate is the granule rate of Ogg Opus streams. Opus always runs at
// 48kHz internally regardless of the input rate.
const SampleRate = 48000

var errMalformedPacket = errors.New("opus: malformed packet")

// frameDuration returns the per-frame duration in 48kHz samples for a TOC
// config number (RFC 6716 section 3.1).
func frameDuration(config byte) int {
	switch {
	case config < 12:
		// SILK-only: 10, 20, 40, 60 ms
		return []int{480, 960, 1920, 2880}[config&3]
	case config < 16:
		// Hybrid: 10, 20 ms
		return []int{480, 960}[config&1]
	default:
		// CELT-only: 2.5, 5, 10, 20 ms
		return []int{120, 240, 480, 960}[config&3]
	}
}

// PacketDuration returns the duration of an Opus packet in 48kHz samples.
// Empty packets have zero duration.
func PacketDuration(packet []byte) (int, error) {
	if len(packet) == 0 {
		return 0, nil
	}
	toc := packet[0]
	size := frameDuration(toc >> 3)

	var frames int
	switch toc & 3 {
	case 0:
		frames = 1
	case 1, 2:
		frames = 2
	case 3:
		if len(packet) < 2 {
			return 0, fmt.Errorf("%w: code 3 packet without frame count", errMalformedPacket)
		}
		frames = int(packet[1] & 0x3F)
		if frames == 0 {
			return 0, fmt.Errorf("%w: code 3 packet with zero frames", errMalformedPacket)
		}
	}

	duration := frames * size
	if duration > 5760 {
		return 0, fmt.Errorf("%w: %d samples exceeds the 120ms packet limit", errMalformedPacket, duration)
	}
	return duration, nil
}

// IsAlignmentPadding reports whether a packet is block-alignment padding:
// non-empty and entirely zero-filled. Such packets carry no audio and are
// excluded from duration accounting.
func IsAlignmentPadding(packet []byte) bool {
	if len(packet) == 0 {
		return false
	}
	for _, b := range packet {
		if b != 0 {
			return false
		}
	}
	return true
}

// PageDuration sums the durations of the audio packets on a page,
// skipping empty and alignment-padding packets.
func PageDuration(packets [][]byte) (int, error) {
	total := 0
	for _, packet := range packets {
		if len(packet) == 0 || IsAlignmentPadding(packet) {
			continue
		}
		d, err := PacketDuration(packet)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}
