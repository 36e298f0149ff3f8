// ABOUTME: Fixed-size container header codec
// ABOUTME: Encodes the five-field header message into exactly 4096 bytes

package tonie

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

const (
	// HeaderRegionSize is the size of the header region at the start of
	// every container file. The audio region begins right after it.
	HeaderRegionSize = 0x1000

	// headerContentSize is the declared length of the header message,
	// stored as a big-endian prefix in the first four bytes.
	headerContentSize = 0xFFC
)

// Protobuf wire layout of the header message.
const (
	fieldHash     = 1 // bytes, 20-byte SHA1 of the audio region
	fieldLength   = 2 // varint, audio region byte length
	fieldAudioID  = 3 // varint, timestamp-derived identifier
	fieldChapters = 4 // packed varints, page sequence of each track start
	fieldFill     = 5 // bytes, zero fill up to the fixed message size

	wireVarint = 0
	wireBytes  = 2
)

// Header is the decoded container header.
type Header struct {
	// Hash is the SHA1 of the entire audio region.
	Hash []byte

	// AudioLength is the audio region length in bytes.
	AudioLength int32

	// AudioID identifies the audio stream. Every Ogg page's serial
	// number must equal it.
	AudioID uint32

	// Chapters lists the page sequence number at which each track
	// begins, strictly increasing. The first entry is always 0.
	Chapters []uint32
}

// Encode serializes the header into its 4096-byte on-disk region: the
// 0xFFC length prefix, the field data, and a fill field sized so the
// message occupies exactly 0xFFC bytes.
func (h *Header) Encode() ([]byte, error) {
	if len(h.Hash) != sha1.Size {
		return nil, fmt.Errorf("tonie: header hash is %d bytes, need %d", len(h.Hash), sha1.Size)
	}
	for i := 1; i < len(h.Chapters); i++ {
		if h.Chapters[i] <= h.Chapters[i-1] {
			return nil, fmt.Errorf("tonie: chapter markers not strictly increasing at index %d", i)
		}
	}

	body := make([]byte, 0, 64+len(h.Chapters)*5)
	body = append(body, fieldHash<<3|wireBytes, sha1.Size)
	body = append(body, h.Hash...)
	body = append(body, fieldLength<<3|wireVarint)
	body = binary.AppendUvarint(body, uint64(uint32(h.AudioLength)))
	body = append(body, fieldAudioID<<3|wireVarint)
	body = binary.AppendUvarint(body, uint64(h.AudioID))

	var packed []byte
	for _, c := range h.Chapters {
		packed = binary.AppendUvarint(packed, uint64(c))
	}
	body = append(body, fieldChapters<<3|wireBytes)
	body = binary.AppendUvarint(body, uint64(len(packed)))
	body = append(body, packed...)

	// The fill field brings the message to exactly headerContentSize
	// bytes: one tag byte, the fill length varint, then zeros.
	remain := headerContentSize - len(body)
	fill := -1
	for lenSize := 1; lenSize <= 3; lenSize++ {
		candidate := remain - 1 - lenSize
		if candidate >= 0 && uvarintSize(uint64(candidate)) == lenSize {
			fill = candidate
			break
		}
	}
	if fill < 0 {
		return nil, fmt.Errorf("tonie: header message overflows %d bytes (%d chapters)", headerContentSize, len(h.Chapters))
	}
	body = append(body, fieldFill<<3|wireBytes)
	body = binary.AppendUvarint(body, uint64(fill))
	body = append(body, make([]byte, fill)...)

	region := make([]byte, HeaderRegionSize)
	binary.BigEndian.PutUint32(region[0:4], headerContentSize)
	copy(region[4:], body)
	return region, nil
}

// DecodeHeader parses the 4096-byte header region. A declared content
// length other than 0xFFC yields ErrCorruptHeader.
func DecodeHeader(region []byte) (*Header, error) {
	if len(region) < 4 {
		return nil, fmt.Errorf("%w: region truncated at %d bytes", ErrCorruptHeader, len(region))
	}
	declared := binary.BigEndian.Uint32(region[0:4])
	if declared != headerContentSize {
		return nil, fmt.Errorf("%w: declared length 0x%X, want 0x%X", ErrCorruptHeader, declared, headerContentSize)
	}
	if len(region) < 4+headerContentSize {
		return nil, fmt.Errorf("%w: region truncated at %d bytes", ErrCorruptHeader, len(region))
	}

	h := &Header{}
	msg := region[4 : 4+headerContentSize]
	for len(msg) > 0 {
		tag, n := binary.Uvarint(msg)
		if n <= 0 {
			return nil, fmt.Errorf("%w: bad field tag", ErrCorruptHeader)
		}
		msg = msg[n:]
		field, wire := tag>>3, tag&7

		switch wire {
		case wireVarint:
			v, n := binary.Uvarint(msg)
			if n <= 0 {
				return nil, fmt.Errorf("%w: bad varint in field %d", ErrCorruptHeader, field)
			}
			msg = msg[n:]
			switch field {
			case fieldLength:
				h.AudioLength = int32(v)
			case fieldAudioID:
				h.AudioID = uint32(v)
			case fieldChapters:
				// Unpacked encoding of the chapter list.
				h.Chapters = append(h.Chapters, uint32(v))
			}
		case wireBytes:
			length, n := binary.Uvarint(msg)
			if n <= 0 || uint64(len(msg)-n) < length {
				return nil, fmt.Errorf("%w: bad length in field %d", ErrCorruptHeader, field)
			}
			data := msg[n : n+int(length)]
			msg = msg[n+int(length):]
			switch field {
			case fieldHash:
				h.Hash = append([]byte(nil), data...)
			case fieldChapters:
				for len(data) > 0 {
					v, n := binary.Uvarint(data)
					if n <= 0 {
						return nil, fmt.Errorf("%w: bad packed chapter list", ErrCorruptHeader)
					}
					h.Chapters = append(h.Chapters, uint32(v))
					data = data[n:]
				}
			}
		default:
			return nil, fmt.Errorf("%w: unsupported wire type %d in field %d", ErrCorruptHeader, wire, field)
		}
	}
	return h, nil
}

func uvarintSize(v uint64) int {
	size := 1
	for v >= 0x80 {
		v >>= 7
		size++
	}
	return size
}
