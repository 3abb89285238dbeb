package host

import (
	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/joshuapare/heapkit/internal/buf"
)

// DefaultBreakLimit is the reservation used by NewBreak when limit <= 0.
const DefaultBreakLimit = 1 << 20

// Break emulates a program break inside a fixed reservation.
//
// The reservation is taken from mcache on the first upward move and handed
// back when the break returns to zero, so repeated arena lifetimes reuse the
// same pooled buffers. Memory above the old break is zeroed when granted.
//
// NOT thread-safe.
type Break struct {
	limit int
	mem   []byte
	brk   int
}

// NewBreak creates a Break that refuses to grow past limit bytes.
func NewBreak(limit int) *Break {
	if limit <= 0 {
		limit = DefaultBreakLimit
	}
	return &Break{limit: limit}
}

// Limit returns the maximum break.
func (b *Break) Limit() int { return b.limit }

// Sbrk implements Host.
func (b *Break) Sbrk(delta int) (int, error) {
	prev := b.brk
	next, ok := buf.AddOverflowSafe(prev, delta)
	if !ok || next < 0 {
		return -1, ErrBadDelta
	}
	if next > b.limit {
		return -1, ErrNoMemory
	}
	if next > prev {
		if b.mem == nil {
			b.mem = mcache.Malloc(b.limit)
		}
		clear(b.mem[prev:next])
	}
	b.brk = next
	if next == 0 && b.mem != nil {
		mcache.Free(b.mem)
		b.mem = nil
	}
	return prev, nil
}

// Bytes implements Host.
func (b *Break) Bytes() []byte {
	if b.mem == nil {
		return nil
	}
	return b.mem[:b.brk:b.brk]
}
