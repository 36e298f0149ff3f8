// ABOUTME: OpusHead and OpusTags packet construction and parsing
// ABOUTME: Implements the RFC 7845 identification and comment headers

package opus

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	headMagic = "OpusHead"
	tagsMagic = "OpusTags"

	// headSize is the OpusHead length for channel mapping family 0.
	headSize = 19

	headVersion = 1
)

// ErrInvalidHeader indicates a malformed OpusHead or OpusTags packet.
var ErrInvalidHeader = errors.New("opus: invalid header packet")

// Head is the OpusHead identification header (mapping family 0).
type Head struct {
	Channels  byte
	PreSkip   uint16
	InputRate uint32 // informational; playback always happens at 48kHz
	Gain      int16
}

// IsHead reports whether the packet starts with the OpusHead magic.
func IsHead(packet []byte) bool {
	return len(packet) >= len(headMagic) && string(packet[:len(headMagic)]) == headMagic
}

// IsTags reports whether the packet starts with the OpusTags magic.
func IsTags(packet []byte) bool {
	return len(packet) >= len(tagsMagic) && string(packet[:len(tagsMagic)]) == tagsMagic
}

// BuildHead serializes an OpusHead packet for mapping family 0.
func BuildHead(h Head) []byte {
	packet := make([]byte, headSize)
	copy(packet[0:8], headMagic)
	packet[8] = headVersion
	packet[9] = h.Channels
	binary.LittleEndian.PutUint16(packet[10:12], h.PreSkip)
	binary.LittleEndian.PutUint32(packet[12:16], h.InputRate)
	binary.LittleEndian.PutUint16(packet[16:18], uint16(h.Gain))
	packet[18] = 0 // mapping family 0: mono/stereo, implicit order
	return packet
}

// ParseHead decodes an OpusHead packet.
func ParseHead(packet []byte) (*Head, error) {
	if !IsHead(packet) || len(packet) < headSize {
		return nil, ErrInvalidHeader
	}
	if packet[8] != headVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, packet[8])
	}
	return &Head{
		Channels:  packet[9],
		PreSkip:   binary.LittleEndian.Uint16(packet[10:12]),
		InputRate: binary.LittleEndian.Uint32(packet[12:16]),
		Gain:      int16(binary.LittleEndian.Uint16(packet[16:18])),
	}, nil
}

// BuildTags serializes an OpusTags packet with an empty comment list,
// zero-padded to exactly targetLen bytes. Decoders ignore data past the
// comment list, which is how the first audio block is filled to the 4096
// boundary. A targetLen of 0 yields the minimal packet.
func BuildTags(vendor string, targetLen int) ([]byte, error) {
	minimal := len(tagsMagic) + 4 + len(vendor) + 4
	if targetLen == 0 {
		targetLen = minimal
	}
	if targetLen < minimal {
		return nil, fmt.Errorf("opus: tags packet needs %d bytes, only %d available", minimal, targetLen)
	}

	packet := make([]byte, targetLen)
	copy(packet, tagsMagic)
	binary.LittleEndian.PutUint32(packet[8:12], uint32(len(vendor)))
	copy(packet[12:], vendor)
	binary.LittleEndian.PutUint32(packet[12+len(vendor):], 0) // comment count
	return packet, nil
}
