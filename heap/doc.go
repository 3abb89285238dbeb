// Package heap manages the single contiguous region a free-list allocator
// serves requests from.
//
// # Overview
//
// An Arena asks its host for exactly Capacity bytes the first time it is
// needed and hands the same number of bytes back when it is released. It never
// grows or shrinks in between, so offsets into it stay valid for the arena's
// whole lifetime.
//
//	h := host.NewBreak(1 << 20)
//	a, err := heap.NewArena(h, 4096)
//	if err != nil {
//	    return err
//	}
//	if err := a.Acquire(); err != nil {
//	    // errors.Is(err, heap.ErrArenaInit) is always true here
//	    return err
//	}
//	defer a.Release()
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/heap/alloc: block list, allocation and release
//   - github.com/joshuapare/heapkit/heap/host: growth primitives
//   - github.com/joshuapare/heapkit/heap/dirty: dirty range tracking for file-backed arenas
package heap
