// ABOUTME: Tests for the playback drain loop
// ABOUTME: Uses a stub player to verify drain waits until playback stops

package output

import (
	"testing"
	"time"
)

// stubPlayer reports playing for a fixed number of polls.
type stubPlayer struct {
	polls int
}

func (s *stubPlayer) IsPlaying() bool {
	s.polls--
	return s.polls > 0
}

func TestWaitDrainedStopsWithPlayback(t *testing.T) {
	s := &stubPlayer{polls: 4}
	done := make(chan struct{})
	go func() {
		waitDrained(s)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not return after playback stopped")
	}
	if s.polls > 0 {
		t.Errorf("drain returned while still playing (%d polls left)", s.polls)
	}
}

func TestWaitDrainedIdlePlayer(t *testing.T) {
	start := time.Now()
	waitDrained(&stubPlayer{polls: 1})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("drain of an idle player took %s", elapsed)
	}
}
