// ABOUTME: Ogg Opus audio decoder
// ABOUTME: Reassembles packets across pages and decodes them with libopus

package decode

import (
	"fmt"
	"os"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/ogg"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/opus"
	libopus "gopkg.in/hraban/opus.v2"
)

// maxFrameSamples is the largest Opus frame: 120ms at 48kHz.
const maxFrameSamples = 5760

// openOpus decodes an Ogg Opus file.
func openOpus(path string) (*audio.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Opus file: %w", err)
	}
	return OpusStream(data)
}

// OpusStream decodes a raw Ogg Opus stream to PCM, e.g. a container's
// audio region. Alignment padding packets are skipped.
func OpusStream(data []byte) (*audio.Track, error) {
	pages, err := ogg.ParsePages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Ogg stream: %w", err)
	}

	packets := assemblePackets(pages)
	channels := 2
	if len(packets) > 0 && opus.IsHead(packets[0]) {
		head, err := opus.ParseHead(packets[0])
		if err != nil {
			return nil, err
		}
		channels = int(head.Channels)
	}
	if channels < 1 || channels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d", channels)
	}

	decoder, err := libopus.NewDecoder(opus.SampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	var samples []int32
	pcm16 := make([]int16, maxFrameSamples*channels)
	for _, packet := range packets {
		if len(packet) == 0 || opus.IsHead(packet) || opus.IsTags(packet) {
			continue
		}
		if opus.IsAlignmentPadding(packet) {
			continue
		}

		n, err := decoder.Decode(packet, pcm16)
		if err != nil {
			return nil, fmt.Errorf("opus decode failed: %w", err)
		}
		for _, s := range pcm16[:n*channels] {
			samples = append(samples, audio.SampleFromInt16(s))
		}
	}

	return &audio.Track{
		Samples:    samples,
		SampleRate: opus.SampleRate,
		Channels:   channels,
	}, nil
}

// assemblePackets joins page payloads into packets, following lacing
// values across page boundaries (a trailing 255 continues the packet on
// the next page).
func assemblePackets(pages []*ogg.Page) [][]byte {
	var packets [][]byte
	var carry []byte
	for _, page := range pages {
		if !page.IsContinued() {
			carry = nil
		}
		offset := 0
		for _, lace := range page.Segments {
			end := offset + int(lace)
			if end > len(page.Payload) {
				end = len(page.Payload)
			}
			carry = append(carry, page.Payload[offset:end]...)
			offset = end
			if lace < 255 {
				packets = append(packets, carry)
				carry = nil
			}
		}
	}
	return packets
}
