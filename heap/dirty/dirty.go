package dirty

import (
	"context"
	"sort"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/host"
	"github.com/joshuapare/heapkit/internal/format"
)

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 64

// Range represents a dirty byte range.
type Range struct {
	Off int64
	Len int64
}

// Tracker accumulates dirty ranges and flushes them efficiently.
//
// NOT thread-safe. Only one goroutine should use it at a time.
type Tracker struct {
	arena  *heap.Arena
	ranges []Range // host coordinates, coalesced at flush time
}

var _ DirtyTracker = (*Tracker)(nil)

// NewTracker creates a dirty tracker for the given arena.
func NewTracker(a *heap.Arena) *Tracker {
	return &Tracker{
		arena:  a,
		ranges: make([]Range, 0, defaultRangeCapacity),
	}
}

// Add records a dirty range relative to the arena start. The range is
// stored in host coordinates, so a later Release does not move it.
func (t *Tracker) Add(off, length int) {
	if length <= 0 {
		return
	}
	base := int64(t.arena.Start())
	t.ranges = append(t.ranges, Range{Off: base + int64(off), Len: int64(length)})
}

// Len returns the number of raw ranges recorded since the last flush.
func (t *Tracker) Len() int { return len(t.ranges) }

// Ranges returns the recorded ranges page-aligned, sorted and merged, in host
// coordinates. Ranges are clipped to the current host region, so pages given
// back to the host are dropped.
func (t *Tracker) Ranges() []Range {
	return t.coalesce(int64(len(t.arena.Host().Bytes())))
}

// Flush forwards every dirty page range to the host's Syncer and clears the
// tracker. Hosts that are not Syncers only have their ranges cleared.
//
// The context is checked before each range; on cancellation some ranges may
// already have been flushed and the remaining ones are kept for the next call.
func (t *Tracker) Flush(ctx context.Context) error {
	if len(t.ranges) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s, ok := t.arena.Host().(host.Syncer)
	if !ok {
		t.Reset()
		return nil
	}

	for _, r := range t.Ranges() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Sync(int(r.Off), int(r.Len)); err != nil {
			return err
		}
	}

	t.Reset()
	return nil
}

// Reset clears all tracked ranges.
func (t *Tracker) Reset() {
	t.ranges = t.ranges[:0]
}

// coalesce page-aligns ranges, sorts them, and merges overlapping/adjacent
// ranges. Ranges are clipped to limit.
func (t *Tracker) coalesce(limit int64) []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, 0, len(t.ranges))
	for _, r := range t.ranges {
		start := format.TruncPage(r.Off)
		end := min(format.AlignPage(r.Off+r.Len), limit)
		if start >= end {
			continue
		}
		aligned = append(aligned, Range{Off: start, Len: end - start})
	}
	if len(aligned) == 0 {
		return nil
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.Off+current.Len {
			current.Len = max(current.Off+current.Len, next.Off+next.Len) - current.Off
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
