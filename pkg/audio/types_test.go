// ABOUTME: Tests for sample conversions and track duration
// ABOUTME: Covers 16/24-bit scaling and sign extension

package audio

import (
	"testing"
	"time"
)

func TestSampleToInt16(t *testing.T) {
	if got := SampleToInt16(256 << 8); got != 256 {
		t.Errorf("expected 256, got %d", got)
	}
	if got := SampleToInt16(Max24Bit); got != 32767 {
		t.Errorf("expected 32767 for max 24-bit, got %d", got)
	}
}

func TestSampleFromInt16(t *testing.T) {
	if got := SampleFromInt16(32767); got != 32767<<8 {
		t.Errorf("expected %d, got %d", 32767<<8, got)
	}
	if got := SampleFromInt16(-32768); got != -32768<<8 {
		t.Errorf("expected %d, got %d", -32768<<8, got)
	}
}

func TestSampleFrom24Bit(t *testing.T) {
	if got := SampleFrom24Bit([3]byte{0x00, 0x01, 0x02}); got != 0x020100 {
		t.Errorf("expected 0x020100, got %d", got)
	}
	// 0xFFFFFF is -1 after sign extension.
	if got := SampleFrom24Bit([3]byte{0xFF, 0xFF, 0xFF}); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestTrackDuration(t *testing.T) {
	track := &Track{Samples: make([]int32, 48000*2), SampleRate: 48000, Channels: 2}
	if got := track.Duration(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}

	empty := &Track{}
	if got := empty.Duration(); got != 0 {
		t.Errorf("expected 0 for empty track, got %v", got)
	}
}
