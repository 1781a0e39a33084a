package tracker

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// IDGenerator issues task ids.
type IDGenerator interface {
	NextID() string
}

// TimeIDs issues ids of the form "<unix-millis>-<seq>".
// The millisecond part never decreases; seq restarts at 0 whenever the
// millisecond part advances and otherwise increments, so two ids issued
// within the same millisecond still differ.
type TimeIDs struct {
	mu     sync.Mutex
	now    func() time.Time
	lastMS int64
	seq    int64
}

// NewTimeIDs creates a TimeIDs generator reading the given clock.
// A nil clock means time.Now.
func NewTimeIDs(now func() time.Time) *TimeIDs {
	if now == nil {
		now = time.Now
	}
	return &TimeIDs{now: now, lastMS: -1}
}

// NextID implements IDGenerator.
func (g *TimeIDs) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms > g.lastMS {
		g.lastMS = ms
		g.seq = 0
	} else {
		g.seq++
	}
	return strconv.FormatInt(g.lastMS, 10) + "-" + strconv.FormatInt(g.seq, 10)
}

// UUIDs issues random version 4 UUIDs.
type UUIDs struct{}

// NextID implements IDGenerator.
func (UUIDs) NextID() string {
	return uuid.NewString()
}
