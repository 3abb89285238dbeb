package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitThreshold checks the near-fit rule on a fresh 4096-byte arena whose
// single free block has 4080 payload bytes. A block is split only when the
// remainder after the request is at least one header plus one alignment unit.
func TestSplitThreshold(t *testing.T) {
	tests := []struct {
		name   string
		size   uint32
		shapes []shape
		splits int
	}{
		{"exact fit", 4080, []shape{{4080, true}}, 0},
		{"remainder 8 absorbed", 4072, []shape{{4080, true}}, 0},
		{"remainder 16 absorbed", 4064, []shape{{4080, true}}, 0},
		{"remainder 24 split", 4056, []shape{{4056, true}, {8, false}}, 1},
		{"remainder 32 split", 4048, []shape{{4048, true}, {16, false}}, 1},
		{"unaligned request rounds first", 4057, []shape{{4080, true}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fl := newTestFreeList(t, 4096, nil)

			p, err := fl.Alloc(tt.size)
			require.NoError(t, err)
			assert.Equal(t, Ptr(16), p)
			assert.Equal(t, tt.shapes, shapes(fl))
			assert.Equal(t, tt.splits, fl.Stats().SplitCount)
			assertInvariants(t, fl)

			require.NoError(t, fl.Free(p))
			assert.Equal(t, []shape{{4080, false}}, shapes(fl))
		})
	}
}

func TestSplitThreshold_TooLarge(t *testing.T) {
	fl := newTestFreeList(t, 4096, nil)

	_, err := fl.Alloc(4081)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, 1, fl.Stats().AllocFailures)
	assert.Equal(t, []shape{{4080, false}}, shapes(fl))
}

// TestSplitThreshold_NearFitInsideList checks that an absorbed remainder in
// the middle of the list keeps the neighbour links intact.
func TestSplitThreshold_NearFitInsideList(t *testing.T) {
	fl := newTestFreeList(t, 4096, nil)

	a, err := fl.Alloc(48)
	require.NoError(t, err)
	_, err = fl.Alloc(8)
	require.NoError(t, err)
	require.NoError(t, fl.Free(a))

	// 48 - 32 = 16 < 24: the whole 48-byte hole is handed out.
	p, err := fl.Alloc(32)
	require.NoError(t, err)
	assert.Equal(t, a, p)
	assert.Len(t, fl.Bytes(p), 48)
	assert.Equal(t, []shape{{48, true}, {8, true}, {3992, false}}, shapes(fl))
	assertInvariants(t, fl)
}
