package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/heapkit/internal/format"
)

type testBlock struct {
	size  uint32
	inUse bool
}

// buildArena lays out blocks back to back with correct links and returns the
// arena bytes and the header offsets.
func buildArena(t *testing.T, blocks ...testBlock) ([]byte, []uint32) {
	t.Helper()

	var total int
	for _, b := range blocks {
		total += format.HeaderSize + int(b.size)
	}
	data := make([]byte, total)
	offs := make([]uint32, len(blocks))

	off := uint32(0)
	for i, b := range blocks {
		offs[i] = off
		off += format.HeaderSize + b.size
	}
	for i, b := range blocks {
		h := format.Header{Size: b.size, InUse: b.inUse, Prev: format.NilOffset, Next: format.NilOffset}
		if i > 0 {
			h.Prev = offs[i-1]
		}
		if i < len(blocks)-1 {
			h.Next = offs[i+1]
		}
		format.EncodeHeader(data, int(offs[i]), h)
	}
	return data, offs
}

func requireValidationError(t *testing.T, err error, typ string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.Equal(t, typ, verr.Type)
	return verr
}

// TestAllInvariants_Valid tests the arena from the reference scenario after
// its third step.
func TestAllInvariants_Valid(t *testing.T) {
	data, _ := buildArena(t,
		testBlock{16, true},
		testBlock{24, true},
		testBlock{4008, false},
	)
	require.Len(t, data, 4096)
	require.NoError(t, AllInvariants(data))
}

func TestAllInvariants_SingleFreeBlock(t *testing.T) {
	data, _ := buildArena(t, testBlock{4080, false})
	require.NoError(t, AllInvariants(data))
}

func TestLayout_TooSmall(t *testing.T) {
	err := Layout(make([]byte, 8))
	verr := requireValidationError(t, err, "Layout")
	assert.Equal(t, -1, verr.Offset)
	assert.Contains(t, err.Error(), "arena too small")
}

func TestLayout_NextOutOfRange(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{40, false})
	format.PutU32(data, int(offs[0])+format.NextOffset, 0x1000)

	err := Layout(data)
	verr := requireValidationError(t, err, "Layout")
	assert.Equal(t, 0x1000, verr.Offset)
}

func TestLayout_BackwardLink(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{40, false})
	format.PutU32(data, int(offs[1])+format.NextOffset, 0)

	err := Layout(data)
	requireValidationError(t, err, "Layout")
	assert.Contains(t, err.Error(), "does not advance")
}

func TestLayout_BrokenPrevLink(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{24, true}, testBlock{40, false})
	format.PutU32(data, int(offs[2])+format.PrevOffset, offs[0])

	err := Layout(data)
	verr := requireValidationError(t, err, "Layout")
	assert.Equal(t, int(offs[2]), verr.Offset)
	assert.Contains(t, err.Error(), "prev link")
}

func TestLayout_HeadHasPrev(t *testing.T) {
	data, _ := buildArena(t, testBlock{16, true}, testBlock{40, false})
	format.PutU32(data, format.PrevOffset, 32)

	err := Layout(data)
	verr := requireValidationError(t, err, "Layout")
	assert.Equal(t, 0, verr.Offset)
}

func TestLayout_GapBetweenBlocks(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{40, false})
	// Shrink the first block; its successor no longer starts where it ends.
	format.PutU32(data, int(offs[0])+format.SizeOffset, 8)

	err := Layout(data)
	requireValidationError(t, err, "Layout")
	assert.Contains(t, err.Error(), "next header is at")
}

func TestLayout_UnalignedSize(t *testing.T) {
	data, _ := buildArena(t, testBlock{40, false})
	format.PutU32(data, format.SizeOffset, 36)

	err := Layout(data)
	requireValidationError(t, err, "Layout")
	assert.Contains(t, err.Error(), "multiple of 8")
}

func TestLayout_LastBlockShort(t *testing.T) {
	data, _ := buildArena(t, testBlock{40, false})
	data = append(data, make([]byte, 8)...)

	err := Layout(data)
	requireValidationError(t, err, "Layout")
	assert.Contains(t, err.Error(), "last block ends")
}

func TestSignatures_Wiped(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{40, false})
	format.ClearSignature(data, int(offs[1]))

	require.NoError(t, Layout(data), "layout does not depend on signatures")
	err := Signatures(data)
	verr := requireValidationError(t, err, "Signatures")
	assert.Equal(t, int(offs[1]), verr.Offset)
}

func TestConservation_Mismatch(t *testing.T) {
	data, _ := buildArena(t, testBlock{16, true}, testBlock{40, false})
	data = append(data, make([]byte, 16)...)

	err := Conservation(data)
	verr := requireValidationError(t, err, "Conservation")
	assert.Equal(t, 2, verr.Details["blocks"])
}

func TestNoAdjacentFree(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, false}, testBlock{24, true}, testBlock{40, false})
	require.NoError(t, NoAdjacentFree(data))

	data, offs = buildArena(t, testBlock{16, true}, testBlock{24, false}, testBlock{40, false})
	err := NoAdjacentFree(data)
	verr := requireValidationError(t, err, "NoAdjacentFree")
	assert.Equal(t, int(offs[2]), verr.Offset)
}

func TestPointer(t *testing.T) {
	data, offs := buildArena(t, testBlock{16, true}, testBlock{24, false}, testBlock{40, true})

	require.NoError(t, Pointer(data, offs[0]+format.HeaderSize))
	require.NoError(t, Pointer(data, offs[2]+format.HeaderSize))

	err := Pointer(data, offs[1]+format.HeaderSize)
	requireValidationError(t, err, "Pointer")
	assert.Contains(t, err.Error(), "block is free")

	err = Pointer(data, offs[0]+format.HeaderSize+8)
	requireValidationError(t, err, "Pointer")
	assert.Contains(t, err.Error(), "no block header")

	err = Pointer(data, 0)
	requireValidationError(t, err, "Pointer")
}

func TestValidationError_Format(t *testing.T) {
	withOff := &ValidationError{Type: "Layout", Message: "bad", Offset: 0x20}
	assert.Equal(t, "Layout at offset 0x20: bad", withOff.Error())

	noOff := &ValidationError{Type: "Conservation", Message: "bad", Offset: -1}
	assert.Equal(t, "Conservation: bad", noOff.Error())
}
