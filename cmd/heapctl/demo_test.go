package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	resetFlags()

	out, err := captureOutput(t, func() error {
		return runDemo(context.Background())
	})
	require.NoError(t, err)

	for _, want := range []string{
		"# step 1",
		"alloc p1 10 -> 16",
		"alloc big 5000: no space",
		"alloc p2 20 -> 48",
		"free p1 (16)",
		"free p2 (48)",
		"blocks=3 used=2 (40 bytes) free=1 (4,008 bytes)",
		"blocks=1 used=0 (0 bytes) free=1 (4,080 bytes)",
		"verify: ok",
	} {
		assert.Contains(t, out, want)
	}
}

func TestDemo_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	out, err := captureOutput(t, func() error {
		return runDemo(context.Background())
	})
	require.NoError(t, err)

	docs := decodeJSONStream(t, out)
	require.Len(t, docs, len(demoScript), "one block list per step")
	last := docs[len(docs)-1]
	blocks, ok := last["blocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	assert.InDelta(t, 4080, blocks[0].(map[string]any)["size"], 0)
}

func TestDemo_SmallArena(t *testing.T) {
	resetFlags()
	capacity = 48

	out, err := captureOutput(t, func() error {
		return runDemo(context.Background())
	})
	require.NoError(t, err)
	assert.Contains(t, out, "alloc p2 20: no space")
}

func TestDemo_Mmap(t *testing.T) {
	resetFlags()
	hostKind = hostMmap

	out, err := captureOutput(t, func() error {
		return runDemo(context.Background())
	})
	if err != nil {
		t.Skipf("mmap host unavailable: %v", err)
	}
	assert.Contains(t, out, "verify: ok")
}

func TestStats(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := writeScript(t, "alloc a 10\nalloc b 20\nfree a\nalloc c 9000\n")

	out, err := captureOutput(t, func() error {
		return runStats(context.Background(), []string{path})
	})
	require.NoError(t, err)

	docs := decodeJSONStream(t, out)
	require.Len(t, docs, 1)
	assert.InDelta(t, 3, docs[0]["alloc_calls"], 0)
	assert.InDelta(t, 1, docs[0]["alloc_failures"], 0)
	assert.InDelta(t, 1, docs[0]["blocks_in_use"], 0)
	assert.InDelta(t, 24, docs[0]["bytes_in_use"], 0)
}

func TestStateStyleKeepsLabel(t *testing.T) {
	assert.Contains(t, stateStyle(true, "used"), "used")
	assert.Contains(t, stateStyle(false, "free"), "free")
}
