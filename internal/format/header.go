package format

// Header is the decoded form of a block header.
type Header struct {
	Size  uint32 // usable payload bytes
	InUse bool
	Gen   uint8  // incremented each time the block is handed out
	Prev  uint32 // header offset of the previous block, or NilOffset
	Next  uint32 // header offset of the next block, or NilOffset
}

// End returns the offset one past the block's payload, which is where the
// next block's header must start.
func (h Header) End(off uint32) uint64 {
	return uint64(off) + HeaderSize + uint64(h.Size)
}

// DecodeHeader reads the header at off. The caller guarantees that
// b[off:off+HeaderSize] is in range.
func DecodeHeader(b []byte, off int) Header {
	return Header{
		Size:  ReadU32(b, off+SizeOffset),
		InUse: b[off+FlagsOffset]&FlagInUse != 0,
		Gen:   b[off+GenOffset],
		Prev:  ReadU32(b, off+PrevOffset),
		Next:  ReadU32(b, off+NextOffset),
	}
}

// EncodeHeader writes h at off, including the block signature.
func EncodeHeader(b []byte, off int, h Header) {
	PutU32(b, off+SizeOffset, h.Size)
	copy(b[off+SignatureOffset:off+SignatureOffset+SignatureLen], BlockSignature)
	var flags byte
	if h.InUse {
		flags |= FlagInUse
	}
	b[off+FlagsOffset] = flags
	b[off+GenOffset] = h.Gen
	PutU32(b, off+PrevOffset, h.Prev)
	PutU32(b, off+NextOffset, h.Next)
}

// HasSignature reports whether the header at off carries BlockSignature.
func HasSignature(b []byte, off int) bool {
	return b[off+SignatureOffset] == BlockSignature[0] &&
		b[off+SignatureOffset+1] == BlockSignature[1]
}

// ClearSignature wipes the signature of a header that is no longer a list
// entry, so stale pointers into it are recognisable.
func ClearSignature(b []byte, off int) {
	b[off+SignatureOffset] = 0
	b[off+SignatureOffset+1] = 0
}
