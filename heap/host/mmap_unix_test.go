//go:build unix

package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMmap_GrowShrinkCycle(t *testing.T) {
	m := NewMmap(1 << 16)

	prev, err := m.Sbrk(3 * 4096)
	require.NoError(t, err)
	assert.Equal(t, 0, prev)
	require.Len(t, m.Bytes(), 3*4096)

	// Touch every page, then give two of them back.
	for i := range m.Bytes() {
		m.Bytes()[i] = 0xAA
	}
	prev, err = m.Sbrk(-2*4096 + 100)
	require.NoError(t, err)
	assert.Equal(t, 3*4096, prev)
	assert.Len(t, m.Bytes(), 4096+100)

	_, err = m.Sbrk(2*4096 - 100)
	require.NoError(t, err)
	data := m.Bytes()
	assert.Equal(t, byte(0), data[4096+100], "tail of the partial page must be cleared")
	assert.Equal(t, byte(0), data[2*4096], "released pages must read as zero")
	assert.Equal(t, byte(0xAA), data[4096+99], "bytes below the break are preserved")

	_, err = m.Sbrk(-3 * 4096)
	require.NoError(t, err)
	assert.Nil(t, m.Bytes(), "mapping should be removed at zero break")
}

func TestMmap_DeniesGrowthPastLimit(t *testing.T) {
	m := NewMmap(4096)
	_, err := m.Sbrk(8192)
	require.ErrorIs(t, err, ErrNoMemory)
	_, err = m.Sbrk(-1)
	require.ErrorIs(t, err, ErrBadDelta)
}

func TestMmap_Sync(t *testing.T) {
	m := NewMmap(1 << 16)
	var _ Syncer = m

	require.NoError(t, m.Sync(0, 16), "sync before the first growth is a no-op")

	_, err := m.Sbrk(2*4096 + 100)
	require.NoError(t, err)
	require.NoError(t, m.Sync(16, 16))
	require.NoError(t, m.Sync(4096+50, 4096), "range past the break is clipped")
	require.NoError(t, m.Sync(1<<20, 16), "range beyond the mapping is ignored")
}
