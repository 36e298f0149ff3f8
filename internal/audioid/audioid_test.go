// ABOUTME: Tests for audio id generation
// ABOUTME: Verifies monotonic uniqueness under rapid calls and clock stalls

package audioid

import (
	"testing"
	"time"
)

func TestNextMatchesClock(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	g := &Timestamp{now: func() time.Time { return fixed }}

	if id := g.Next(); id != 1700000000 {
		t.Errorf("expected id 1700000000, got %d", id)
	}
}

func TestNextStrictlyIncreasingOnStalledClock(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	g := &Timestamp{now: func() time.Time { return fixed }}

	prev := g.Next()
	for i := 0; i < 100; i++ {
		id := g.Next()
		if id <= prev {
			t.Fatalf("id %d not above previous %d", id, prev)
		}
		prev = id
	}
}

func TestNextConcurrentUnique(t *testing.T) {
	g := NewTimestamp()
	const n = 64

	ids := make(chan uint32, n)
	for i := 0; i < n; i++ {
		go func() { ids <- g.Next() }()
	}

	seen := make(map[uint32]bool)
	for i := 0; i < n; i++ {
		id := <-ids
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}
