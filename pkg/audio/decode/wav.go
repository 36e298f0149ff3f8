// ABOUTME: WAV audio decoder
// ABOUTME: Parses RIFF chunks and decodes 16-bit and 24-bit PCM

package decode

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
)

// openWAV decodes a RIFF/WAVE file holding 16-bit or 24-bit PCM.
func openWAV(path string) (*audio.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file: %s", path)
	}

	var (
		channels   int
		sampleRate int
		bitDepth   int
		pcm        []byte
	)

	// Walk the chunk list; chunks are word aligned.
	pos := 12
	for pos+8 <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := data[pos+8:]
		if size > len(body) {
			return nil, fmt.Errorf("truncated %q chunk", id)
		}
		body = body[:size]

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk too small: %d bytes", size)
			}
			format := binary.LittleEndian.Uint16(body[0:2])
			if format != 1 {
				return nil, fmt.Errorf("unsupported WAV format tag %d (only PCM)", format)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitDepth = int(binary.LittleEndian.Uint16(body[14:16]))
		case "data":
			pcm = body
		}

		pos += 8 + size
		if size%2 == 1 {
			pos++
		}
	}

	if channels == 0 || sampleRate == 0 {
		return nil, fmt.Errorf("missing fmt chunk in %s", path)
	}
	if pcm == nil {
		return nil, fmt.Errorf("missing data chunk in %s", path)
	}

	switch bitDepth {
	case 16:
		numSamples := len(pcm) / 2
		samples := make([]int32, numSamples)
		for i := 0; i < numSamples; i++ {
			sample16 := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
			samples[i] = audio.SampleFromInt16(sample16)
		}
		return &audio.Track{Samples: samples, SampleRate: sampleRate, Channels: channels}, nil
	case 24:
		numSamples := len(pcm) / 3
		samples := make([]int32, numSamples)
		for i := 0; i < numSamples; i++ {
			samples[i] = audio.SampleFrom24Bit([3]byte{pcm[i*3], pcm[i*3+1], pcm[i*3+2]})
		}
		return &audio.Track{Samples: samples, SampleRate: sampleRate, Channels: channels}, nil
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", bitDepth)
	}
}
