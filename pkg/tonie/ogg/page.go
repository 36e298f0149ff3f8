// ABOUTME: Ogg page structure with parse and serialize support
// ABOUTME: Handles segment tables, page flags and CRC recomputation

package ogg

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Page flag bits in the header type field.
const (
	FlagContinued = 0x01 // page continues a packet from the previous page
	FlagBOS       = 0x02 // beginning of stream
	FlagEOS       = 0x04 // end of stream
)

const (
	// BlockSize is the alignment unit the Toniebox firmware seeks by.
	// Every page in the audio region must end on a multiple of it.
	BlockSize = 4096

	// headerSize is the fixed page header length before the segment table.
	headerSize = 27

	capturePattern = "OggS"

	maxSegments = 255

	// maxPadSegment keeps padding lacing values below 255 so a padding
	// segment never needs the two-entry escape for 255-byte packets.
	maxPadSegment = 254
)

// Package-level errors.
var (
	// ErrInvalidPage indicates a missing capture pattern or a segment
	// table claiming more bytes than the buffer holds.
	ErrInvalidPage = errors.New("ogg: invalid page structure")

	// ErrBadCRC indicates a stored page checksum that does not match the
	// recomputed one.
	ErrBadCRC = errors.New("ogg: CRC mismatch")
)

// Page is a single Ogg page.
type Page struct {
	Version    byte
	Flags      byte
	GranulePos uint64
	Serial     uint32
	Sequence   uint32

	// Segments holds the lacing values of the segment table.
	Segments []byte

	// Payload is the concatenated packet data described by Segments.
	Payload []byte
}

// IsBOS reports whether the beginning-of-stream flag is set.
func (p *Page) IsBOS() bool { return p.Flags&FlagBOS != 0 }

// IsEOS reports whether the end-of-stream flag is set.
func (p *Page) IsEOS() bool { return p.Flags&FlagEOS != 0 }

// IsContinued reports whether the page continues a packet from the
// previous page.
func (p *Page) IsContinued() bool { return p.Flags&FlagContinued != 0 }

// SetBOS sets or clears the beginning-of-stream flag.
func (p *Page) SetBOS(on bool) { p.setFlag(FlagBOS, on) }

// SetEOS sets or clears the end-of-stream flag.
func (p *Page) SetEOS(on bool) { p.setFlag(FlagEOS, on) }

func (p *Page) setFlag(bit byte, on bool) {
	if on {
		p.Flags |= bit
	} else {
		p.Flags &^= bit
	}
}

// Size returns the serialized page length in bytes.
func (p *Page) Size() int {
	return headerSize + len(p.Segments) + len(p.Payload)
}

// PacketLengths splits the segment table into packet lengths. A lacing
// value of 255 continues the current packet, anything smaller ends it.
// A packet left open by a trailing 255 is not reported.
func (p *Page) PacketLengths() []int {
	var lengths []int
	current := 0
	for _, lace := range p.Segments {
		current += int(lace)
		if lace < 255 {
			lengths = append(lengths, current)
			current = 0
		}
	}
	return lengths
}

// Packets splits the payload into the packets completed on this page.
func (p *Page) Packets() [][]byte {
	lengths := p.PacketLengths()
	packets := make([][]byte, 0, len(lengths))
	offset := 0
	for _, n := range lengths {
		if offset+n > len(p.Payload) {
			packets = append(packets, p.Payload[offset:])
			break
		}
		packets = append(packets, p.Payload[offset:offset+n])
		offset += n
	}
	return packets
}

// AppendPacket adds a packet to the page, extending the segment table.
// Returns an error when the segment table would overflow 255 entries.
func (p *Page) AppendPacket(packet []byte) error {
	table := BuildSegmentTable(len(packet))
	if len(p.Segments)+len(table) > maxSegments {
		return fmt.Errorf("ogg: segment table overflow (%d entries)", len(p.Segments)+len(table))
	}
	p.Segments = append(p.Segments, table...)
	p.Payload = append(p.Payload, packet...)
	return nil
}

// BuildSegmentTable returns the lacing values for a single packet of the
// given length. Lengths that are exact multiples of 255 get a trailing
// zero lacing value to terminate the packet.
func BuildSegmentTable(packetLen int) []byte {
	full := packetLen / 255
	rest := packetLen % 255
	table := make([]byte, full+1)
	for i := 0; i < full; i++ {
		table[i] = 255
	}
	table[full] = byte(rest)
	return table
}

// Encode serializes the page, recomputing the CRC over the page bytes
// with the checksum field zeroed.
func (p *Page) Encode() []byte {
	data := make([]byte, p.Size())
	copy(data[0:4], capturePattern)
	data[4] = p.Version
	data[5] = p.Flags
	binary.LittleEndian.PutUint64(data[6:14], p.GranulePos)
	binary.LittleEndian.PutUint32(data[14:18], p.Serial)
	binary.LittleEndian.PutUint32(data[18:22], p.Sequence)
	data[26] = byte(len(p.Segments))
	copy(data[27:], p.Segments)
	copy(data[27+len(p.Segments):], p.Payload)

	crc := Checksum(data)
	binary.LittleEndian.PutUint32(data[22:26], crc)
	return data
}

// ParsePage parses one page from the start of data. It returns the page,
// the number of bytes consumed and an error. The stored CRC is verified.
func ParsePage(data []byte) (*Page, int, error) {
	if len(data) < headerSize {
		return nil, 0, ErrInvalidPage
	}
	if string(data[0:4]) != capturePattern {
		return nil, 0, ErrInvalidPage
	}

	p := &Page{
		Version:    data[4],
		Flags:      data[5],
		GranulePos: binary.LittleEndian.Uint64(data[6:14]),
		Serial:     binary.LittleEndian.Uint32(data[14:18]),
		Sequence:   binary.LittleEndian.Uint32(data[18:22]),
	}
	storedCRC := binary.LittleEndian.Uint32(data[22:26])

	numSegments := int(data[26])
	if len(data) < headerSize+numSegments {
		return nil, 0, ErrInvalidPage
	}
	p.Segments = append([]byte(nil), data[27:27+numSegments]...)

	payloadLen := 0
	for _, lace := range p.Segments {
		payloadLen += int(lace)
	}
	total := headerSize + numSegments + payloadLen
	if len(data) < total {
		return nil, 0, ErrInvalidPage
	}
	p.Payload = append([]byte(nil), data[headerSize+numSegments:total]...)

	scratch := append([]byte(nil), data[:total]...)
	scratch[22], scratch[23], scratch[24], scratch[25] = 0, 0, 0, 0
	if Checksum(scratch) != storedCRC {
		return nil, 0, ErrBadCRC
	}
	return p, total, nil
}

// ParsePages parses a buffer containing a whole sequence of pages. The
// buffer must contain nothing but pages.
func ParsePages(data []byte) ([]*Page, error) {
	var pages []*Page
	offset := 0
	for offset < len(data) {
		page, n, err := ParsePage(data[offset:])
		if err != nil {
			return nil, fmt.Errorf("page at offset %d: %w", offset, err)
		}
		pages = append(pages, page)
		offset += n
	}
	return pages, nil
}
