// ABOUTME: Timestamp-derived audio id generation
// ABOUTME: Guarantees strictly increasing ids under rapid repeated calls

package audioid

import (
	"sync"
	"time"
)

// Generator produces container audio ids. The hardware uses the id both
// as the stream serial and as a cache key, so ids must never repeat.
type Generator interface {
	Next() uint32
}

// Timestamp derives ids from the current Unix time. When called more than
// once within a second it advances past the last issued id, so ids are
// strictly increasing per generator.
type Timestamp struct {
	mu   sync.Mutex
	last uint32
	now  func() time.Time
}

// NewTimestamp returns a generator backed by the wall clock.
func NewTimestamp() *Timestamp {
	return &Timestamp{now: time.Now}
}

// Next issues the next audio id.
func (g *Timestamp) Next() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := uint32(g.now().Unix())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
