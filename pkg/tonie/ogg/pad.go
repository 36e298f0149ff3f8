// ABOUTME: Block boundary padding for Ogg pages
// ABOUTME: Appends zero-filled segments so a page ends on a 4096-byte boundary

package ogg

import "fmt"

// PadToBoundary appends zero-filled padding segments so that the page,
// serialized at the given offset, ends exactly on the next BlockSize
// boundary. Padding lacing values stay at or below 254 so no padding
// packet needs a continuation entry. A page that already ends on a
// boundary is left untouched.
//
// The page must not already span a boundary; that indicates a packing bug
// in the caller and is reported as an error.
func (p *Page) PadToBoundary(offset int64) error {
	if int64(p.Size()) > BlockSize-offset%BlockSize {
		return fmt.Errorf("ogg: page of %d bytes at offset %d spans a block boundary", p.Size(), offset)
	}
	end := offset + int64(p.Size())
	space := int(BlockSize - end%BlockSize)
	if space == BlockSize {
		return nil
	}

	// Find the largest payload byte count whose combined cost (payload
	// plus lacing entries) still fits, then close any 1-2 byte gap with
	// empty segments. Start from the floor estimate space*254/255.
	pad := space * maxPadSegment / (maxPadSegment + 1)
	for pad > 0 && pad+laceCount(pad) > space {
		pad--
	}
	for pad+1+laceCount(pad+1) <= space {
		pad++
	}
	empty := space - pad - laceCount(pad)

	entries := laceCount(pad) + empty
	if len(p.Segments)+entries > maxSegments {
		return fmt.Errorf("ogg: padding needs %d segment entries, table full", entries)
	}

	for remaining := pad; remaining > 0; {
		lace := remaining
		if lace > maxPadSegment {
			lace = maxPadSegment
		}
		p.Segments = append(p.Segments, byte(lace))
		remaining -= lace
	}
	for i := 0; i < empty; i++ {
		p.Segments = append(p.Segments, 0)
	}
	p.Payload = append(p.Payload, make([]byte, pad)...)

	if (offset+int64(p.Size()))%BlockSize != 0 {
		return fmt.Errorf("ogg: padding solver failed for %d bytes of space", space)
	}
	return nil
}

// laceCount returns the number of lacing entries needed for n bytes of
// padding payload, each entry at most maxPadSegment bytes.
func laceCount(n int) int {
	return (n + maxPadSegment - 1) / maxPadSegment
}
