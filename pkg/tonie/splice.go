// ABOUTME: Lossless chapter extraction and recombination
// ABOUTME: Re-frames pre-encoded Opus pages without touching packet bytes

package tonie

import (
	"crypto/sha1"
	"fmt"

	"github.com/BdN3504/teddy-sub000/pkg/tonie/ogg"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/opus"
)

// vendor is written into the OpusTags packet of streams this engine
// assembles. Kept constant so identical inputs hash identically.
const vendor = "teddy"

// ExtractChapters slices the audio region into per-chapter byte ranges at
// the chapter-marker page boundaries. No packet is decoded or modified;
// the first chapter includes the OpusHead/OpusTags pages of the stream.
func ExtractChapters(header *Header, audio []byte) ([][]byte, error) {
	if len(header.Chapters) == 0 {
		return nil, fmt.Errorf("tonie: header has no chapter markers")
	}

	// Map page sequence numbers to byte offsets.
	offsets := make(map[uint32]int)
	pos := 0
	for pos < len(audio) {
		page, n, err := ogg.ParsePage(audio[pos:])
		if err != nil {
			return nil, fmt.Errorf("audio region at offset %d: %w", pos, err)
		}
		offsets[page.Sequence] = pos
		pos += n
	}

	bounds := make([]int, len(header.Chapters)+1)
	for i, marker := range header.Chapters {
		off, ok := offsets[marker]
		if !ok {
			return nil, fmt.Errorf("tonie: chapter marker %d has no page", marker)
		}
		bounds[i] = off
	}
	bounds[len(header.Chapters)] = len(audio)

	chapters := make([][]byte, len(header.Chapters))
	for i := range chapters {
		if bounds[i] >= bounds[i+1] {
			return nil, fmt.Errorf("tonie: chapter %d is empty or out of order", i)
		}
		chapters[i] = append([]byte(nil), audio[bounds[i]:bounds[i+1]]...)
	}
	return chapters, nil
}

// UpdateStreamSerial rewrites the stream serial number of every page in
// raw and recomputes each CRC. With resetGranule the granule positions
// are re-based to start at zero, so the chapter no longer carries the
// source file's absolute timeline. Packet bytes, segment tables, page
// sizes and sequence numbers are preserved exactly.
func UpdateStreamSerial(raw []byte, newSerial uint32, resetGranule bool) ([]byte, error) {
	pages, err := ogg.ParsePages(raw)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("tonie: no pages in chapter data")
	}

	var base uint64
	if resetGranule {
		base, err = granuleBase(pages)
		if err != nil {
			return nil, err
		}
	}

	out := make([]byte, 0, len(raw))
	for _, page := range pages {
		page.Serial = newSerial
		if resetGranule && page.GranulePos >= base {
			page.GranulePos -= base
		}
		out = append(out, page.Encode()...)
	}
	return out, nil
}

// CombineTracks assembles an ordered list of chapter buffers into one
// hardware-valid audio region. Buffers may be untouched raw chapters from
// ExtractChapters or freshly encoded streams; any OpusHead/OpusTags pages
// they carry are dropped and a single new header page pair is emitted.
// Audio packet bytes pass through unmodified. Returns the audio region,
// its SHA1 and the chapter markers.
func CombineTracks(buffers [][]byte, audioID uint32) ([]byte, []byte, []uint32, error) {
	if len(buffers) == 0 {
		return nil, nil, nil, ErrNoTracks
	}

	head := &ogg.Page{Serial: audioID}
	head.SetBOS(true)
	if err := head.AppendPacket(opus.BuildHead(opus.Head{Channels: 2, InputRate: opus.SampleRate})); err != nil {
		return nil, nil, nil, err
	}

	// The OpusTags page absorbs enough zero padding that the two header
	// pages fill the first 4096-byte block exactly.
	tags := &ogg.Page{Serial: audioID, Sequence: 1}
	tagsPacket, err := tagsPacketFilling(ogg.BlockSize - head.Size())
	if err != nil {
		return nil, nil, nil, err
	}
	if err := tags.AppendPacket(tagsPacket); err != nil {
		return nil, nil, nil, err
	}
	if head.Size()+tags.Size() != ogg.BlockSize {
		return nil, nil, nil, fmt.Errorf("tonie: header pages fill %d bytes, want %d", head.Size()+tags.Size(), ogg.BlockSize)
	}

	out := append([]byte(nil), head.Encode()...)
	out = append(out, tags.Encode()...)

	var (
		chapters []uint32
		pending  *ogg.Page // held back one step so EOS can go on the last page
		seq      = uint32(2)
		running  uint64
		offset   = int64(ogg.BlockSize)
	)

	flush := func(last bool) error {
		if pending == nil {
			return nil
		}
		pending.SetEOS(last)
		if err := pending.PadToBoundary(offset); err != nil {
			return err
		}
		data := pending.Encode()
		out = append(out, data...)
		offset += int64(len(data))
		pending = nil
		return nil
	}

	for i, buffer := range buffers {
		pages, err := audioPages(buffer)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("track %d: %w", i, err)
		}
		if len(pages) == 0 {
			return nil, nil, nil, fmt.Errorf("track %d: no audio pages", i)
		}

		base, err := granuleBase(pages)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("track %d: %w", i, err)
		}

		if i == 0 {
			// By convention the first track is marked at the start of
			// the stream, not at its first audio page.
			chapters = append(chapters, 0)
		} else {
			chapters = append(chapters, seq)
		}

		start := running
		for _, page := range pages {
			if err := flush(false); err != nil {
				return nil, nil, nil, err
			}
			page.Serial = audioID
			page.Sequence = seq
			seq++
			page.SetBOS(false)
			page.SetEOS(false)
			if page.GranulePos >= base {
				page.GranulePos = start + (page.GranulePos - base)
			} else {
				page.GranulePos = start
			}
			running = page.GranulePos
			pending = page
		}
	}
	if err := flush(true); err != nil {
		return nil, nil, nil, err
	}

	sum := sha1.Sum(out)
	return out, sum[:], chapters, nil
}

// ExportOpus converts a chapter buffer into a standalone playable Ogg
// Opus stream: fresh OpusHead/OpusTags pages, the stream serial
// rewritten, granules re-based to a zero timeline and the end-of-stream
// flag on the final page. Trailing alignment padding is dropped; audio
// packet bytes pass through unmodified.
func ExportOpus(chapter []byte, serial uint32) ([]byte, error) {
	pages, err := audioPages(chapter)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("tonie: no audio pages in chapter data")
	}
	base, err := granuleBase(pages)
	if err != nil {
		return nil, err
	}

	head := &ogg.Page{Serial: serial}
	head.SetBOS(true)
	if err := head.AppendPacket(opus.BuildHead(opus.Head{Channels: 2, InputRate: opus.SampleRate})); err != nil {
		return nil, err
	}
	tagsPacket, err := opus.BuildTags(vendor, 0)
	if err != nil {
		return nil, err
	}
	tags := &ogg.Page{Serial: serial, Sequence: 1}
	if err := tags.AppendPacket(tagsPacket); err != nil {
		return nil, err
	}

	out := append([]byte(nil), head.Encode()...)
	out = append(out, tags.Encode()...)
	for i, page := range pages {
		page.Serial = serial
		page.Sequence = uint32(i + 2)
		page.SetBOS(false)
		page.SetEOS(i == len(pages)-1)
		if page.GranulePos >= base {
			page.GranulePos -= base
		} else {
			page.GranulePos = 0
		}
		out = append(out, page.Encode()...)
	}
	return out, nil
}

// audioPages parses a chapter buffer and returns its audio pages, with
// OpusHead/OpusTags pages dropped and trailing alignment-padding packets
// stripped (they are re-created by the output padding pass).
func audioPages(buffer []byte) ([]*ogg.Page, error) {
	pages, err := ogg.ParsePages(buffer)
	if err != nil {
		return nil, err
	}

	var result []*ogg.Page
	for _, page := range pages {
		if page.IsContinued() {
			return nil, fmt.Errorf("tonie: packet spans a page boundary, cannot splice")
		}
		packets := page.Packets()
		if len(packets) > 0 && (opus.IsHead(packets[0]) || opus.IsTags(packets[0])) {
			continue
		}

		for len(packets) > 0 && opus.IsAlignmentPadding(packets[len(packets)-1]) {
			packets = packets[:len(packets)-1]
		}
		if len(packets) == 0 {
			continue
		}

		stripped := &ogg.Page{
			Version:    page.Version,
			Flags:      page.Flags,
			GranulePos: page.GranulePos,
			Serial:     page.Serial,
			Sequence:   page.Sequence,
		}
		for _, packet := range packets {
			if err := stripped.AppendPacket(packet); err != nil {
				return nil, err
			}
		}
		result = append(result, stripped)
	}
	return result, nil
}

// granuleBase computes the granule position just before the first page of
// a chapter: its granule minus the duration of its own audio packets.
// Subtracting it re-bases the chapter's timeline to zero.
func granuleBase(pages []*ogg.Page) (uint64, error) {
	first := pages[0]
	duration, err := opus.PageDuration(first.Packets())
	if err != nil {
		return 0, err
	}
	if uint64(duration) > first.GranulePos {
		return 0, nil
	}
	return first.GranulePos - uint64(duration), nil
}

// tagsPacketFilling sizes an OpusTags packet so its page serializes to
// exactly space bytes, accounting for the lacing entries the packet needs.
func tagsPacketFilling(space int) ([]byte, error) {
	for packetLen := space - 28; packetLen > 0; packetLen-- {
		pageSize := 27 + len(ogg.BuildSegmentTable(packetLen)) + packetLen
		if pageSize == space {
			return opus.BuildTags(vendor, packetLen)
		}
		if pageSize < space {
			break
		}
	}
	return nil, fmt.Errorf("tonie: cannot size tags page to %d bytes", space)
}
