package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/heap/host"
	"github.com/joshuapare/heapkit/heap/verify"
)

// newTestFreeList creates a FreeList over a Break host with room for exactly
// one arena of the given capacity. The arena is released on cleanup.
func newTestFreeList(t *testing.T, capacity int, opts *Options) *FreeList {
	t.Helper()
	fl, err := New(host.NewBreak(capacity), capacity, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = fl.Reset() })
	return fl
}

// shape is the part of a Block the scenario tests care about.
type shape struct {
	Size  uint32
	InUse bool
}

func shapes(fl *FreeList) []shape {
	var out []shape
	for b := range fl.Blocks() {
		out = append(out, shape{Size: b.Size, InUse: b.InUse})
	}
	return out
}

func assertInvariants(t *testing.T, fl *FreeList) {
	t.Helper()
	require.NoError(t, verify.AllInvariants(fl.Arena().Bytes()))
}

// mockDirtyTracker records every range the allocator marks.
type mockDirtyTracker struct {
	offs []int
}

func (m *mockDirtyTracker) Add(off, length int) {
	m.offs = append(m.offs, off)
}

func (m *mockDirtyTracker) has(off int) bool {
	for _, o := range m.offs {
		if o == off {
			return true
		}
	}
	return false
}
