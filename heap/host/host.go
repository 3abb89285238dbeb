// Package host provides the growth primitives an arena is carved from.
//
// A Host models a process break: a contiguous region [0, brk) that can be
// grown or shrunk by a signed delta. Sbrk returns the break as it was before
// the call, so the first byte of freshly granted memory is at the returned
// offset. The arena acquires its capacity with exactly one positive Sbrk and
// returns it with exactly one negative Sbrk of the same size.
//
// Three hosts are provided:
//
//   - Break: an in-process region reserved from a pooled byte cache.
//   - Mmap: an anonymous private mapping (unix only).
//   - File: a shared mapping of a file that grows with the break (unix only).
package host

import "errors"

var (
	// ErrNoMemory indicates the host refused to move the break upward.
	ErrNoMemory = errors.New("host: out of memory")

	// ErrBadDelta indicates a delta that would move the break below zero or overflow.
	ErrBadDelta = errors.New("host: invalid break delta")

	// ErrUnsupported indicates the host is not available on this platform.
	ErrUnsupported = errors.New("host: not supported on this platform")
)

// Host is the primitive that grows or shrinks the addressable region.
type Host interface {
	// Sbrk moves the break by delta bytes and returns the previous break.
	// Sbrk(0) reports the current break without side effects.
	Sbrk(delta int) (int, error)

	// Bytes returns the region [0, break). The slice is invalidated by the
	// next Sbrk that changes the break.
	Bytes() []byte
}

// Syncer is implemented by hosts whose memory is backed by durable storage.
type Syncer interface {
	// Sync flushes the bytes covering [off, off+n) of the region.
	Sync(off, n int) error
}
