// Package alloc provides an explicit free-list allocator over a fixed arena.
//
// # Overview
//
// Every block in the arena is preceded by a 16-byte header recording its
// payload size, whether it is in use, and links to the blocks immediately
// before and after it in memory. Free and in-use blocks share one
// address-ordered, doubly-linked list; "free list" is kept as the domain name.
//
// # Allocation
//
// Alloc rounds the request up to 8 bytes (a zero-byte request still gets 8)
// and takes the first free block in address order that is large enough.
// If the block would have fewer than 24 bytes left over (one header plus one
// alignment unit) it is handed out whole; otherwise a new free header is
// written right after the allocated prefix. When nothing fits Alloc returns
// ErrNoSpace and the arena is left byte-for-byte unchanged.
//
// # Release
//
// Free marks the block free and merges it with a free successor first and a
// free predecessor second, so three consecutive free blocks collapse into one
// in a single call. No two neighbouring blocks are ever both free between
// calls.
//
// Free trusts its caller by default: releasing a pointer that was not returned
// by Alloc, or releasing it twice, is undefined. Options.CheckFree turns on a
// validity check based on the header signature and list membership that
// reports ErrBadRef or ErrDoubleFree instead.
//
// # Usage Example
//
//	fl, err := alloc.New(host.NewBreak(1<<20), 4096, nil)
//	if err != nil {
//	    return err
//	}
//	defer fl.Reset()
//
//	p, err := fl.Alloc(10) // lazily acquires the arena
//	if errors.Is(err, alloc.ErrNoSpace) {
//	    // arena exhausted
//	}
//	copy(fl.Bytes(p), "hello")
//	_ = fl.Free(p)
//
// # Pointers
//
// A Ptr is the payload's byte offset from the start of the arena, never a
// machine address. Zero is the null pointer: a header always precedes the
// first payload.
//
// # Thread Safety
//
// FreeList is not thread-safe. Wrap it in Locked when more than one goroutine
// needs it.
//
// # Related Packages
//
//   - github.com/joshuapare/heapkit/heap: arena acquisition and release
//   - github.com/joshuapare/heapkit/heap/dirty: tracks rewritten headers for flushing
//   - github.com/joshuapare/heapkit/heap/verify: structural invariant checks
//   - github.com/joshuapare/heapkit/internal/format: header layout
package alloc
