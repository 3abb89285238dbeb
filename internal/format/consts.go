// Package format describes the on-arena block header layout used by the
// free-list allocator. It keeps the byte-level encoding in one place so the
// allocator, verifier and printers agree on field offsets without sharing any
// mutable state.
package format

var (
	// BlockSignature is the two-byte tag written into every live block header.
	// Layout:
	//   0x04  'f' 'b'
	BlockSignature = []byte{'f', 'b'}
)

const (
	// HeaderSize is the size of a block header in bytes. Every block's payload
	// begins exactly HeaderSize bytes after its header.
	HeaderSize = 0x10

	// Alignment is the unit all payload sizes are rounded up to.
	Alignment = 8

	// AlignmentMask is the bitmask used for aligning to Alignment (Alignment - 1).
	AlignmentMask = Alignment - 1

	// MinSplitRemainder is the smallest leftover that justifies carving a new
	// block: one header plus one alignment unit. Anything smaller stays with
	// the allocated block.
	MinSplitRemainder = HeaderSize + Alignment

	// MinArenaSize is the smallest arena that can hold one header and one
	// alignment unit of payload.
	MinArenaSize = HeaderSize + Alignment

	// MaxArenaSize is the largest arena addressable with 32-bit header links.
	// NilOffset is never a valid header offset because a header needs
	// HeaderSize bytes after it.
	MaxArenaSize = 0xFFFFFFFF

	// NilOffset marks an absent prev/next link.
	NilOffset = 0xFFFFFFFF

	// PageSize is the granularity used for dirty-range flushing.
	PageSize = 0x1000

	// PageMask is the bitmask used for aligning to PageSize (PageSize - 1).
	PageMask = PageSize - 1
)

// Block header field offsets.
const (
	SizeOffset      = 0x00 // uint32, usable payload bytes
	SignatureOffset = 0x04 // [2]byte, "fb"
	FlagsOffset     = 0x06 // uint8, bit 0 = in use
	GenOffset       = 0x07 // uint8, hand-out counter
	PrevOffset      = 0x08 // uint32, header offset of previous block or NilOffset
	NextOffset      = 0x0C // uint32, header offset of next block or NilOffset

	SignatureLen = FlagsOffset - SignatureOffset
)

// Flag bits stored at FlagsOffset.
const (
	FlagInUse = 0x01
)
