// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes a whole FLAC file to int32 samples

package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
	"github.com/mewkiz/flac"
)

// openFLAC decodes a FLAC file frame by frame.
func openFLAC(path string) (*audio.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	var samples []int32
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("flac decode error: %w", err)
		}

		// FLAC stores samples as signed integers with the declared bit
		// depth; scale everything to 24-bit range.
		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				sample := frame.Subframes[ch].Samples[i]
				switch {
				case bitDepth == 24:
					// Already 24-bit, use directly
				case bitDepth < 24:
					sample <<= 24 - bitDepth
				default:
					sample >>= bitDepth - 24
				}
				samples = append(samples, sample)
			}
		}
	}

	return &audio.Track{
		Samples:    samples,
		SampleRate: int(info.SampleRate),
		Channels:   channels,
	}, nil
}
