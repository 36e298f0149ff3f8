// ABOUTME: Fresh multi-track encode path
// ABOUTME: Decodes source files, Opus-encodes them and assembles a container

package tonie

import (
	"fmt"
	"path/filepath"

	"github.com/BdN3504/teddy-sub000/internal/audioid"
	"github.com/BdN3504/teddy-sub000/pkg/audio"
	"github.com/BdN3504/teddy-sub000/pkg/audio/decode"
	"github.com/BdN3504/teddy-sub000/pkg/audio/resample"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/ogg"
	"github.com/BdN3504/teddy-sub000/pkg/tonie/opus"
	libopus "gopkg.in/hraban/opus.v2"
)

const (
	channels = 2

	// frameSamples is the Opus frame size per channel: 20ms at 48kHz.
	frameSamples = 960

	// maxPacketSize is the output buffer per Opus packet.
	maxPacketSize = 4000

	// DefaultBitrate is used when EncodeOptions.Bitrate is zero.
	DefaultBitrate = 96000
)

// TrackSource is one input track: either pre-encoded chapter bytes that
// pass through the splicer untouched, or an audio file to decode and
// encode. Exactly one of the two is set.
type TrackSource struct {
	raw  []byte
	path string
}

// RawTrack wraps already-encoded chapter bytes, e.g. from ExtractChapters.
func RawTrack(data []byte) TrackSource { return TrackSource{raw: data} }

// FileTrack wraps an audio file path (mp3, flac, wav or ogg/opus).
func FileTrack(path string) TrackSource { return TrackSource{path: path} }

func (t TrackSource) name() string {
	if t.path != "" {
		return filepath.Base(t.path)
	}
	return "raw chapter"
}

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// AudioID is the container's audio id. Zero means generate one.
	AudioID uint32

	// Bitrate is the Opus target bitrate in bits per second.
	Bitrate int

	// VBR requests variable bitrate. The libopus binding only exposes
	// (constrained) VBR, so VBR=false is reported as a warning.
	VBR bool

	// SkipFailedTracks continues with the remaining tracks when one
	// track fails to decode or encode, instead of aborting.
	SkipFailedTracks bool

	// IDs generates audio ids when AudioID is zero. Nil means a fresh
	// timestamp generator.
	IDs audioid.Generator
}

// Encode builds a container from the given tracks. File tracks are
// decoded, brought to 48kHz stereo and Opus-encoded; raw tracks pass
// through without re-encoding. Per-track failures go through the callback
// and, with SkipFailedTracks, do not abort the remaining tracks.
func Encode(tracks []TrackSource, opts EncodeOptions, cb Callback) (*Container, error) {
	if cb == nil {
		cb = NopCallback{}
	}
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	id := opts.AudioID
	if id == 0 {
		gen := opts.IDs
		if gen == nil {
			gen = audioid.NewTimestamp()
		}
		id = gen.Next()
	}
	bitrate := opts.Bitrate
	if bitrate == 0 {
		bitrate = DefaultBitrate
	}
	if !opts.VBR {
		cb.Warning("constant bitrate is not supported by the encoder, using constrained VBR")
	}

	var buffers [][]byte
	for i, track := range tracks {
		cb.FileStart(i, track.name())
		if track.raw != nil {
			buffers = append(buffers, track.raw)
			cb.Progress(100)
			cb.FileDone()
			continue
		}

		data, err := encodeAudioFile(track.path, bitrate, cb)
		if err != nil {
			cb.FileFailed(err.Error())
			if opts.SkipFailedTracks {
				cb.Warning(fmt.Sprintf("skipping %s: %v", track.name(), err))
				continue
			}
			return nil, fmt.Errorf("track %d (%s): %w", i, track.name(), err)
		}
		buffers = append(buffers, data)
		cb.FileDone()
	}
	if len(buffers) == 0 {
		return nil, ErrNoTracks
	}

	cb.PostProcessing("assembling audio stream")
	audioBytes, hash, chapters, err := CombineTracks(buffers, id)
	if err != nil {
		return nil, err
	}

	return &Container{
		Header: &Header{
			Hash:        hash,
			AudioLength: int32(len(audioBytes)),
			AudioID:     id,
			Chapters:    chapters,
		},
		Audio:     audioBytes,
		HashValid: true,
	}, nil
}

// encodeAudioFile decodes one source file and returns an unaligned Ogg
// buffer of audio pages (no OpusHead/OpusTags; CombineTracks adds those
// and the block padding).
func encodeAudioFile(path string, bitrate int, cb Callback) ([]byte, error) {
	track, err := decode.Open(path)
	if err != nil {
		return nil, err
	}

	pcm, err := normalize(track)
	if err != nil {
		return nil, err
	}

	enc, err := libopus.NewEncoder(opus.SampleRate, channels, libopus.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("create opus encoder: %w", err)
	}
	if err := enc.SetBitrate(bitrate); err != nil {
		return nil, fmt.Errorf("set bitrate %d: %w", bitrate, err)
	}

	var (
		builder   pageBuilder
		frameSize = frameSamples * channels
		buf       = make([]byte, maxPacketSize)
		frames    = (len(pcm) + frameSize - 1) / frameSize
	)
	for i := 0; i < frames; i++ {
		frame := pcm[i*frameSize:]
		if len(frame) >= frameSize {
			frame = frame[:frameSize]
		} else {
			// Zero-pad the final short frame to a full 20ms.
			padded := make([]int16, frameSize)
			copy(padded, frame)
			frame = padded
		}

		n, err := enc.Encode(frame, buf)
		if err != nil {
			return nil, fmt.Errorf("opus encode: %w", err)
		}
		packet := append([]byte(nil), buf[:n]...)
		if err := builder.add(packet, frameSamples); err != nil {
			return nil, err
		}
		cb.Progress((i + 1) * 100 / frames)
	}
	return builder.finish(), nil
}

// normalize converts a decoded track to interleaved 48kHz stereo int16.
func normalize(track *audio.Track) ([]int16, error) {
	samples := track.Samples
	switch track.Channels {
	case 1:
		stereo := make([]int32, 2*len(samples))
		for i, s := range samples {
			stereo[2*i] = s
			stereo[2*i+1] = s
		}
		samples = stereo
	case 2:
	default:
		return nil, fmt.Errorf("tonie: %d-channel audio not supported", track.Channels)
	}

	if track.SampleRate != opus.SampleRate {
		r := resample.New(track.SampleRate, opus.SampleRate, channels)
		out := make([]int32, r.OutputSamplesNeeded(len(samples))+channels)
		n := r.Resample(samples, out)
		samples = out[:n]
	}

	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = audio.SampleToInt16(s)
	}
	return pcm, nil
}

// pageBuilder packs Opus packets into pages that stay within one 4096
// block after padding, tracking cumulative granule positions.
type pageBuilder struct {
	out     []byte
	current *ogg.Page
	seq     uint32
	granule uint64
}

// maxPageSegments leaves room in the segment table for the padding
// entries PadToBoundary appends later (a block of padding needs at most
// 17 entries).
const maxPageSegments = 255 - 18

func (b *pageBuilder) add(packet []byte, samples int) error {
	table := len(ogg.BuildSegmentTable(len(packet)))
	if b.current != nil {
		overflow := b.current.Size()+table+len(packet) > ogg.BlockSize ||
			len(b.current.Segments)+table > maxPageSegments
		if overflow {
			b.flush()
		}
	}
	if b.current == nil {
		b.current = &ogg.Page{Sequence: b.seq}
		b.seq++
	}
	if err := b.current.AppendPacket(packet); err != nil {
		return err
	}
	b.granule += uint64(samples)
	b.current.GranulePos = b.granule
	return nil
}

func (b *pageBuilder) flush() {
	if b.current == nil {
		return
	}
	b.out = append(b.out, b.current.Encode()...)
	b.current = nil
}

func (b *pageBuilder) finish() []byte {
	b.flush()
	return b.out
}
