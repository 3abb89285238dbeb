package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type opKind int

const (
	opAlloc opKind = iota
	opFree
	opReset
	opDump
	opVerify
)

// op is one parsed script line.
type op struct {
	line int
	kind opKind
	name string
	size uint32
}

// parseScript reads a replay script. Each non-blank line is one of
//
//	alloc <name> <size>
//	free <name>
//	reset
//	dump
//	verify
//
// Text after '#' is ignored.
func parseScript(r io.Reader) ([]op, error) {
	var ops []op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		o, err := parseOp(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		o.line = line
		ops = append(ops, o)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ops, nil
}

func parseOp(fields []string) (op, error) {
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "alloc":
		if len(args) != 2 {
			return op{}, fmt.Errorf("usage: alloc <name> <size>")
		}
		size, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			return op{}, fmt.Errorf("invalid size %q: %w", args[1], err)
		}
		return op{kind: opAlloc, name: args[0], size: uint32(size)}, nil
	case "free":
		if len(args) != 1 {
			return op{}, fmt.Errorf("usage: free <name>")
		}
		return op{kind: opFree, name: args[0]}, nil
	case "reset":
		return bare(opReset, cmd, args)
	case "dump":
		return bare(opDump, cmd, args)
	case "verify":
		return bare(opVerify, cmd, args)
	default:
		return op{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func bare(kind opKind, cmd string, args []string) (op, error) {
	if len(args) != 0 {
		return op{}, fmt.Errorf("%s takes no arguments", cmd)
	}
	return op{kind: kind}, nil
}
