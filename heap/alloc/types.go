package alloc

import (
	"github.com/joshuapare/heapkit/internal/format"
)

// Ptr is a payload offset relative to the arena start. Zero is the null pointer.
type Ptr uint32

// Block is a read-only snapshot of one header.
type Block struct {
	Off   uint32 // header offset from the arena start
	Size  uint32 // usable payload bytes
	InUse bool
	Gen   uint8  // times this block has been handed out, modulo 256
	Prev  uint32 // header offset of the previous block, or format.NilOffset
	Next  uint32 // header offset of the next block, or format.NilOffset
}

// Payload returns the pointer a caller would hold for this block.
func (b Block) Payload() Ptr { return Ptr(b.Off + format.HeaderSize) }

// End returns the offset one past the block's payload.
func (b Block) End() uint64 { return uint64(b.Off) + format.HeaderSize + uint64(b.Size) }

// HasPrev reports whether the block has a predecessor.
func (b Block) HasPrev() bool { return b.Prev != format.NilOffset }

// HasNext reports whether the block has a successor.
func (b Block) HasNext() bool { return b.Next != format.NilOffset }

func blockFrom(off uint32, h format.Header) Block {
	return Block{Off: off, Size: h.Size, InUse: h.InUse, Gen: h.Gen, Prev: h.Prev, Next: h.Next}
}

// Allocator is implemented by FreeList and Locked.
type Allocator interface {
	// Init acquires the arena if it is not held yet. Alloc calls it lazily.
	Init() error

	// Alloc returns a pointer to at least size bytes, or ErrNoSpace.
	Alloc(size uint32) (Ptr, error)

	// Free releases a pointer previously returned by Alloc.
	Free(p Ptr) error

	// Reset returns the arena to its host and forgets every block.
	Reset() error
}

var (
	_ Allocator = (*FreeList)(nil)
	_ Allocator = (*Locked)(nil)
)
