// Package testutil provides testing utilities.
package testutil

import (
	"strconv"
	"sync"
	"time"

	"tracker/internal/tracker"
)

// FixedTime is the creation time of every task made by NewStore.
var FixedTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// SeqIDs issues "1", "2", "3", ... so transcripts stay stable.
type SeqIDs struct {
	mu sync.Mutex
	n  int
}

// NextID implements tracker.IDGenerator.
func (s *SeqIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return strconv.Itoa(s.n)
}

// NewStore creates a store with sequential ids and a frozen clock.
func NewStore() *tracker.Store {
	return tracker.NewStore(
		tracker.WithIDGenerator(&SeqIDs{}),
		tracker.WithClock(func() time.Time { return FixedTime }),
	)
}
