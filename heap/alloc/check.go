package alloc

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// checkFree validates p for Free when Options.CheckFree is set.
//
// A pointer is accepted only if its header is in range, aligned, carries the
// block signature, is reachable from the list head, and is in use. Headers of
// merged-away blocks have their signature wiped, so a pointer to a block that
// was coalesced after an earlier Free fails as ErrBadRef rather than
// ErrDoubleFree.
func (fl *FreeList) checkFree(data []byte, p Ptr) error {
	if uint64(p) < format.HeaderSize {
		return fmt.Errorf("%w: 0x%X precedes the first payload", ErrBadRef, uint32(p))
	}
	off := int(p) - format.HeaderSize
	if !buf.Has(data, off, format.HeaderSize) {
		return fmt.Errorf("%w: 0x%X outside the %d-byte arena", ErrBadRef, uint32(p), len(data))
	}
	if off%format.Alignment != 0 {
		return fmt.Errorf("%w: 0x%X is not aligned to %d", ErrBadRef, uint32(p), format.Alignment)
	}
	if !format.HasSignature(data, off) {
		return fmt.Errorf("%w: 0x%X has no block header", ErrBadRef, uint32(p))
	}
	if !fl.linked(uint32(off)) {
		return fmt.Errorf("%w: 0x%X is not a list entry", ErrBadRef, uint32(p))
	}
	if !fl.header(data, uint32(off)).InUse {
		return fmt.Errorf("%w: 0x%X", ErrDoubleFree, uint32(p))
	}
	return nil
}

// linked reports whether a header at off is reachable from the list head.
func (fl *FreeList) linked(off uint32) bool {
	for b := range fl.Blocks() {
		if b.Off == off {
			return true
		}
		if b.Off > off {
			return false
		}
	}
	return false
}
