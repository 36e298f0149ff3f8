// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes a whole MP3 file to int32 samples

package decode

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// openMP3 decodes an MP3 file. The decoder always outputs 16-bit stereo.
func openMP3(path string) (*audio.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}

	numSamples := len(data) / 2
	samples := make([]int32, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = audio.SampleFromInt16(sample16)
	}

	return &audio.Track{
		Samples:    samples,
		SampleRate: decoder.SampleRate(),
		Channels:   2, // MP3 decoder outputs stereo
	}, nil
}
