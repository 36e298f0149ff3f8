// ABOUTME: Tests for Opus TOC duration math and padding detection
// ABOUTME: Covers SILK, hybrid and CELT configs plus code 3 frame counts

package opus

import "testing"

func TestPacketDuration(t *testing.T) {
	cases := []struct {
		name   string
		packet []byte
		want   int
	}{
		{"empty", nil, 0},
		{"silk nb 10ms code 0", []byte{0x00, 0xAA}, 480},
		{"silk nb 60ms code 0", []byte{0x18, 0xAA}, 2880},
		{"silk wb 20ms code 0", []byte{0x48, 0xAA}, 960},
		{"hybrid swb 10ms code 0", []byte{0x60, 0xAA}, 480},
		{"hybrid fb 20ms code 0", []byte{0x78, 0xAA}, 960},
		{"celt fb 2.5ms code 0", []byte{0xE0, 0xAA}, 120},
		{"celt fb 20ms code 0", []byte{0xF8, 0xAA}, 960},
		{"celt fb 20ms code 1 two frames", []byte{0xF9, 0xAA}, 1920},
		{"celt fb 20ms code 2 two frames", []byte{0xFA, 0xAA}, 1920},
		{"celt fb 2.5ms code 3 four frames", []byte{0xE3, 0x04, 0xAA}, 480},
	}
	for _, c := range cases {
		got, err := PacketDuration(c.packet)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: expected %d samples, got %d", c.name, c.want, got)
		}
	}
}

func TestPacketDurationMalformed(t *testing.T) {
	// Code 3 packet without a frame count byte.
	if _, err := PacketDuration([]byte{0x03}); err == nil {
		t.Error("expected error for code 3 packet without frame count")
	}
	// Code 3 packet with zero frames.
	if _, err := PacketDuration([]byte{0x03, 0x00}); err == nil {
		t.Error("expected error for zero frame count")
	}
	// 48 frames of 60ms would exceed the 120ms packet limit.
	if _, err := PacketDuration([]byte{0x1B, 0x30}); err == nil {
		t.Error("expected error for packet above 120ms")
	}
}

func TestIsAlignmentPadding(t *testing.T) {
	if !IsAlignmentPadding([]byte{0, 0, 0}) {
		t.Error("all-zero packet should be padding")
	}
	if IsAlignmentPadding(nil) {
		t.Error("empty packet is not padding")
	}
	if IsAlignmentPadding([]byte{0, 1, 0}) {
		t.Error("packet with audio bytes is not padding")
	}
}

func TestPageDurationSkipsPadding(t *testing.T) {
	packets := [][]byte{
		{0xF8, 0xAA},  // 960 samples
		{0, 0, 0, 0},  // alignment padding
		nil,           // empty segment
		{0xF9, 0xAA},  // 1920 samples
	}
	got, err := PageDuration(packets)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 2880 {
		t.Errorf("expected 2880 samples, got %d", got)
	}
}
