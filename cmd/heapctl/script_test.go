package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	ops, err := parseScript(strings.NewReader(`
# setup
alloc a 10
ALLOC b 0x20   # hex sizes are accepted

free a
dump
verify
reset
`))
	require.NoError(t, err)
	assert.Equal(t, []op{
		{line: 3, kind: opAlloc, name: "a", size: 10},
		{line: 4, kind: opAlloc, name: "b", size: 32},
		{line: 6, kind: opFree, name: "a"},
		{line: 7, kind: opDump},
		{line: 8, kind: opVerify},
		{line: 9, kind: opReset},
	}, ops)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown command", "alloc a 1\nmalloc b 2\n", "line 2: unknown command \"malloc\""},
		{"missing size", "alloc a\n", "line 1: usage: alloc <name> <size>"},
		{"bad size", "alloc a ten\n", "line 1: invalid size \"ten\""},
		{"size overflow", "alloc a 4294967296\n", "line 1: invalid size"},
		{"free arity", "\n\nfree\n", "line 3: usage: free <name>"},
		{"dump arity", "dump all\n", "line 1: dump takes no arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScript(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
