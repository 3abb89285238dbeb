// Package buf contains overflow-safe offset arithmetic shared by the arena,
// its hosts and the allocator.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Within reports whether [off, off+n) lies inside [0, limit) and returns the
// end offset when it does.
func Within(limit, off, n int) (int, bool) {
	if off < 0 || n < 0 || limit < 0 {
		return 0, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > limit {
		return 0, false
	}
	return end, true
}

// Window returns b[off:off+n] with its capacity clipped to n, so appends by
// the caller can never spill into neighbouring bytes.
func Window(b []byte, off, n int) ([]byte, bool) {
	end, ok := Within(len(b), off, n)
	if !ok {
		return nil, false
	}
	return b[off:end:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Within(len(b), off, n)
	return ok
}
