package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if sum, ok := AddOverflowSafe(10, -15); !ok || sum != -5 {
		t.Fatalf("AddOverflowSafe(10,-15)=%d,%v want -5,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestWithin(t *testing.T) {
	if end, ok := Within(4096, 16, 4080); !ok || end != 4096 {
		t.Fatalf("Within(4096,16,4080)=%d,%v want 4096,true", end, ok)
	}
	if _, ok := Within(4096, 16, 4081); ok {
		t.Fatalf("Within should reject a range ending past the limit")
	}
	if _, ok := Within(4096, math.MaxInt, 1); ok {
		t.Fatalf("Within should reject an overflowing range")
	}
	if _, ok := Within(4096, -1, 1); ok {
		t.Fatalf("Within should reject negative offset")
	}
}

func TestWindowAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	got, ok := Window(data, 1, 3)
	if !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Window returned unexpected result: %v, %v", got, ok)
	}
	if cap(got) != 3 {
		t.Fatalf("Window capacity should be clipped to 3, got %d", cap(got))
	}
	if _, ok := Window(data, 4, 2); ok {
		t.Fatalf("Window should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if _, ok := Window(data, 1, -1); ok {
		t.Fatalf("Window should reject negative length")
	}
}
