// ABOUTME: Format dispatch for audio file decoding
// ABOUTME: Picks a decoder by file extension

package decode

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
)

// Open decodes an entire audio file into a PCM track. The format is
// chosen by file extension.
func Open(path string) (*audio.Track, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return openMP3(path)
	case ".flac":
		return openFLAC(path)
	case ".wav":
		return openWAV(path)
	case ".ogg", ".opus":
		return openOpus(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .flac, .wav, .ogg, .opus)", ext)
	}
}
