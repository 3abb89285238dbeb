package alloc

import (
	"iter"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Arena returns the arena the list allocates from.
func (fl *FreeList) Arena() *heap.Arena { return fl.arena }

// Capacity returns the arena size in bytes.
func (fl *FreeList) Capacity() int { return fl.arena.Capacity() }

// Start returns the arena's offset inside its host region.
func (fl *FreeList) Start() int { return fl.arena.Start() }

// Head returns the first block, or false while the arena is not held.
func (fl *FreeList) Head() (Block, bool) {
	if fl.head == format.NilOffset {
		return Block{}, false
	}
	data := fl.arena.Bytes()
	return blockFrom(fl.head, fl.header(data, fl.head)), true
}

// Bytes returns the payload of p, sized to its block. It returns nil when p
// does not point just past a header inside the arena. The slice aliases the
// arena and is invalidated by Reset.
func (fl *FreeList) Bytes(p Ptr) []byte {
	data := fl.arena.Bytes()
	off := int(p) - format.HeaderSize
	if fl.head == format.NilOffset || !buf.Has(data, off, format.HeaderSize) {
		return nil
	}
	h := fl.header(data, uint32(off))
	payload, ok := buf.Window(data, int(p), int(h.Size))
	if !ok {
		return nil
	}
	return payload
}

// Blocks yields every list entry in address order, starting at the head.
func (fl *FreeList) Blocks() iter.Seq[Block] {
	if fl.head == format.NilOffset {
		return func(func(Block) bool) {}
	}
	return walk(fl.arena.Bytes(), fl.head)
}

// ScanBlocks yields the blocks of an arena image whose head is at offset 0,
// following next links. It stops at the first header that is out of range,
// unsigned, or not strictly after its predecessor, so corrupt images
// terminate.
func ScanBlocks(data []byte) iter.Seq[Block] {
	return walk(data, 0)
}

func walk(data []byte, head uint32) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		off := head
		for off != format.NilOffset {
			if !buf.Has(data, int(off), format.HeaderSize) || !format.HasSignature(data, int(off)) {
				return
			}
			h := format.DecodeHeader(data, int(off))
			if !yield(blockFrom(off, h)) {
				return
			}
			if h.Next != format.NilOffset && h.Next <= off {
				return
			}
			off = h.Next
		}
	}
}

// Image is a read-only view over arena bytes that were not produced by a
// FreeList in this process, such as a file-backed arena opened later.
type Image struct {
	data  []byte
	start int
}

// NewImage wraps data, the bytes of one arena. start is informational and is
// reported by Start.
func NewImage(data []byte, start int) *Image {
	return &Image{data: data, start: start}
}

// Blocks yields the image's blocks; see ScanBlocks.
func (im *Image) Blocks() iter.Seq[Block] { return ScanBlocks(im.data) }

// Capacity returns the image length.
func (im *Image) Capacity() int { return len(im.data) }

// Start returns the start offset given to NewImage.
func (im *Image) Start() int { return im.start }

// Bytes returns the image.
func (im *Image) Bytes() []byte { return im.data }

// Usage tallies the image's blocks.
func (im *Image) Usage() Usage { return UsageOf(im.Blocks()) }
