// ABOUTME: Tests for OpusHead and OpusTags packet codecs
// ABOUTME: Verifies round trips and padded tags packet sizing

package opus

import "testing"

func TestHeadRoundTrip(t *testing.T) {
	in := Head{Channels: 2, PreSkip: 0, InputRate: 48000, Gain: 0}
	packet := BuildHead(in)
	if len(packet) != headSize {
		t.Fatalf("expected %d-byte OpusHead, got %d", headSize, len(packet))
	}
	if !IsHead(packet) {
		t.Fatal("built packet not recognized as OpusHead")
	}

	out, err := ParseHead(packet)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if *out != in {
		t.Errorf("round trip mismatch: %+v != %+v", *out, in)
	}
}

func TestParseHeadRejectsGarbage(t *testing.T) {
	if _, err := ParseHead([]byte("OggS")); err == nil {
		t.Error("expected error for non-OpusHead packet")
	}
	bad := BuildHead(Head{Channels: 2})
	bad[8] = 9
	if _, err := ParseHead(bad); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestBuildTagsPadded(t *testing.T) {
	packet, err := BuildTags("teddy", 500)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(packet) != 500 {
		t.Errorf("expected 500-byte packet, got %d", len(packet))
	}
	if !IsTags(packet) {
		t.Error("built packet not recognized as OpusTags")
	}
	for _, b := range packet[16+len("teddy"):] {
		if b != 0 {
			t.Error("padding area contains non-zero bytes")
			break
		}
	}
}

func TestBuildTagsTooSmall(t *testing.T) {
	if _, err := BuildTags("a vendor string", 10); err == nil {
		t.Error("expected error when target length is below the minimal packet")
	}
}
