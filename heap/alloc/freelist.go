package alloc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/host"
	"github.com/joshuapare/heapkit/internal/format"
)

// DefaultCapacity is the arena size used by callers that have no better idea.
const DefaultCapacity = 4096

// FreeList is a first-fit allocator with in-place splitting and coalescing.
type FreeList struct {
	arena *heap.Arena
	dt    DirtyTracker // Dirty tracker for header writes (nil when not needed)
	opts  Options
	log   *slog.Logger

	// head is the header offset of the first block, or format.NilOffset while
	// the arena is not initialised. The first block never moves, so once set
	// head is always 0.
	head uint32

	stats Stats
}

// New creates a FreeList over a new arena of capacity bytes on h.
func New(h host.Host, capacity int, opts *Options) (*FreeList, error) {
	a, err := heap.NewArena(h, capacity)
	if err != nil {
		return nil, err
	}
	return NewFreeList(a, nil, opts)
}

// NewFreeList creates a FreeList over a.
//
// Parameters:
//   - a: the arena to allocate from; it is acquired lazily
//   - dt: dirty tracker notified of every header write (can be nil)
//   - opts: allocator options (use nil for DefaultOptions)
func NewFreeList(a *heap.Arena, dt DirtyTracker, opts *Options) (*FreeList, error) {
	if a == nil {
		return nil, errors.New("alloc: nil arena")
	}
	o := opts.withDefaults()
	return &FreeList{
		arena: a,
		dt:    dt,
		opts:  o,
		log:   o.Logger,
		head:  format.NilOffset,
	}, nil
}

// Init acquires the arena and writes one free block spanning all of it.
// It is a no-op once the list exists. Host failures are *heap.ArenaInitError.
func (fl *FreeList) Init() error {
	if fl.head != format.NilOffset {
		return nil
	}
	if err := fl.arena.Acquire(); err != nil {
		fl.log.Error("arena acquisition failed", "capacity", fl.arena.Capacity(), "error", err)
		return err
	}

	data := fl.arena.Bytes()
	fl.putHeader(data, 0, format.Header{
		Size: uint32(fl.arena.Capacity() - format.HeaderSize),
		Prev: format.NilOffset,
		Next: format.NilOffset,
	})
	fl.head = 0

	fl.log.Info("arena acquired", "start", fl.arena.Start(), "capacity", fl.arena.Capacity())
	return nil
}

// Alloc returns a pointer to at least size bytes using first fit.
//
// On ErrNoSpace the arena is unchanged. A failed lazy initialisation is
// returned as *heap.ArenaInitError, never as ErrNoSpace.
func (fl *FreeList) Alloc(size uint32) (Ptr, error) {
	fl.stats.AllocCalls++

	if err := fl.Init(); err != nil {
		return 0, err
	}

	need := format.PayloadSize(size)
	data := fl.arena.Bytes()

	// The scan only reads; nothing is written until a block is chosen.
	for off := fl.head; off != format.NilOffset; {
		h := fl.header(data, off)
		if h.InUse || uint64(h.Size) < need {
			off = h.Next
			continue
		}

		n := uint32(need) // need <= h.Size, so it fits
		if h.Size-n < format.MinSplitRemainder {
			// Near fit: a remainder this small could not hold a usable block.
			fl.log.Debug("alloc whole block", "off", off, "size", h.Size, "need", n)
		} else {
			fl.split(data, off, &h, n)
		}

		h.InUse = true
		h.Gen++
		fl.putHeader(data, off, h)

		fl.stats.BlocksInUse++
		fl.stats.BytesInUse += int64(h.Size)
		return Ptr(off + format.HeaderSize), nil
	}

	fl.stats.AllocFailures++
	if fl.log.Enabled(context.Background(), slog.LevelDebug) {
		fl.log.Debug("no free block fits", "request", size, "need", need,
			"largest_free", fl.Usage().LargestFree)
	}
	return 0, ErrNoSpace
}

// split carves a free block out of h's tail so that h keeps exactly n payload
// bytes. h is updated in place; the caller writes it back.
func (fl *FreeList) split(data []byte, off uint32, h *format.Header, n uint32) {
	fl.stats.SplitCount++

	tailOff := off + format.HeaderSize + n
	tail := format.Header{
		Size: h.Size - n - format.HeaderSize,
		Prev: off,
		Next: h.Next,
	}
	fl.putHeader(data, tailOff, tail)
	if tail.Next != format.NilOffset {
		fl.setPrev(data, tail.Next, tailOff)
	}

	fl.log.Debug("split", "off", off, "need", n, "tail_off", tailOff, "tail_size", tail.Size)

	h.Size = n
	h.Next = tailOff
}

// Free releases p and merges its block with free neighbours.
//
// With Options.CheckFree unset, p must have been returned by Alloc and not
// released since; anything else is undefined and may corrupt the list or
// panic. With CheckFree set, invalid pointers are reported as ErrBadRef or
// ErrDoubleFree and the list is left untouched. Free on an allocator whose
// arena is not held always reports ErrBadRef.
func (fl *FreeList) Free(p Ptr) error {
	fl.stats.FreeCalls++

	data := fl.arena.Bytes()
	if fl.head == format.NilOffset || data == nil {
		return fmt.Errorf("%w: 0x%X: arena not initialised", ErrBadRef, uint32(p))
	}
	if fl.opts.CheckFree {
		if err := fl.checkFree(data, p); err != nil {
			return err
		}
	}

	off := uint32(p) - format.HeaderSize
	cur := fl.header(data, off)
	fl.stats.BlocksInUse--
	fl.stats.BytesInUse -= int64(cur.Size)

	// Forward first, so a free successor is already absorbed when the
	// predecessor takes over this block.
	if cur.Next != format.NilOffset {
		if next := fl.header(data, cur.Next); !next.InUse {
			fl.stats.CoalesceForward++
			fl.log.Debug("coalesce forward", "off", off, "next", cur.Next, "next_size", next.Size)

			fl.retire(data, cur.Next)
			cur.Size += next.Size + format.HeaderSize
			cur.Next = next.Next
			if cur.Next != format.NilOffset {
				fl.setPrev(data, cur.Next, off)
			}
		}
	}

	cur.InUse = false

	if cur.Prev != format.NilOffset {
		if prev := fl.header(data, cur.Prev); !prev.InUse {
			fl.stats.CoalesceBackward++
			fl.log.Debug("coalesce backward", "off", off, "prev", cur.Prev, "prev_size", prev.Size)

			prev.Size += cur.Size + format.HeaderSize
			prev.Next = cur.Next
			if cur.Next != format.NilOffset {
				fl.setPrev(data, cur.Next, cur.Prev)
			}
			fl.putHeader(data, cur.Prev, prev)
			fl.retire(data, off)
			return nil
		}
	}

	fl.putHeader(data, off, cur)
	return nil
}

// Reset returns the arena to its host and clears the list and statistics.
// Pointers returned before Reset are invalid afterwards. The next Alloc
// acquires a fresh arena. Host errors are returned but the list is cleared
// regardless.
func (fl *FreeList) Reset() error {
	if fl.head == format.NilOffset && !fl.arena.Ready() {
		return nil
	}
	fl.head = format.NilOffset
	fl.stats = Stats{}

	if err := fl.arena.Release(); err != nil {
		fl.log.Error("arena release failed", "capacity", fl.arena.Capacity(), "error", err)
		return err
	}
	fl.log.Info("arena released", "capacity", fl.arena.Capacity())
	return nil
}
