package format

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int) int {
	return (n + AlignmentMask) & ^AlignmentMask
}

// Align8U64 is the uint64 form of Align8. Callers widen 32-bit requests before
// rounding so that sizes close to 4 GiB do not wrap.
func Align8U64(n uint64) uint64 {
	return (n + AlignmentMask) &^ AlignmentMask
}

// PayloadSize returns the payload bytes reserved for a request of n bytes.
// A zero-byte request still reserves one alignment unit so no live block ever
// has zero capacity.
//
// Example:
//
//	PayloadSize(0)  = 8
//	PayloadSize(10) = 16
//	PayloadSize(20) = 24
func PayloadSize(n uint32) uint64 {
	need := Align8U64(uint64(n))
	if need == 0 {
		return Alignment
	}
	return need
}

// AlignPage returns n aligned up to the next page boundary.
func AlignPage(n int64) int64 {
	return (n + PageMask) &^ PageMask
}

// TruncPage returns n aligned down to a page boundary.
func TruncPage(n int64) int64 {
	return n &^ PageMask
}
