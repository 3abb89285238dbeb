package alloc

import "github.com/joshuapare/heapkit/internal/format"

// Header accessors. Every write goes through here so the dirty tracker sees it.

func (fl *FreeList) header(data []byte, off uint32) format.Header {
	return format.DecodeHeader(data, int(off))
}

func (fl *FreeList) putHeader(data []byte, off uint32, h format.Header) {
	format.EncodeHeader(data, int(off), h)
	fl.markDirty(off)
}

func (fl *FreeList) setPrev(data []byte, off, prev uint32) {
	format.PutU32(data, int(off)+format.PrevOffset, prev)
	fl.markDirty(off)
}

// retire wipes the signature of a header that has been merged into a
// neighbour and is no longer a list entry.
func (fl *FreeList) retire(data []byte, off uint32) {
	format.ClearSignature(data, int(off))
	fl.markDirty(off)
}

func (fl *FreeList) markDirty(off uint32) {
	if fl.dt != nil {
		fl.dt.Add(int(off), format.HeaderSize)
	}
}
