// ABOUTME: Oto-based audio output implementation
// ABOUTME: Handles PCM playback with software volume control using oto library

package output

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/BdN3504/teddy-sub000/pkg/audio"
	"github.com/ebitengine/oto/v3"
)

// Oto output implementation using oto library
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	volume     int
	ready      bool
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{volume: 100}
}

// Open initializes the output device
func (o *Oto) Open(sampleRate, channels int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	o.otoCtx = ctx
	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()
	o.ready = true
	return nil
}

// Write outputs audio samples (blocks until written)
func (o *Oto) Write(samples []int32) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	// Apply volume and convert to 16-bit little-endian for oto.
	data := make([]byte, len(samples)*2)
	for i, sample := range samples {
		scaled := int64(sample) * int64(o.volume) / 100
		if scaled > audio.Max24Bit {
			scaled = audio.Max24Bit
		} else if scaled < audio.Min24Bit {
			scaled = audio.Min24Bit
		}
		s16 := audio.SampleToInt16(int32(scaled))
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s16))
	}

	if _, err := o.pipeWriter.Write(data); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}
	return nil
}

// Drain closes the sample pipe and blocks until the device has played
// everything still buffered.
func (o *Oto) Drain() error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		waitDrained(o.player)
	}
	return nil
}

// drainable is the part of the oto player the drain loop needs.
type drainable interface {
	IsPlaying() bool
}

// waitDrained polls until playback has stopped. The oto player stops on
// its own once the source hits EOF and the buffer is consumed.
func waitDrained(p drainable) {
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
}

// Close releases output resources
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		o.player.Close()
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		o.otoCtx.Suspend()
		o.ready = false
	}
	return nil
}
