package verify

import (
	"fmt"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Error types for different validation failures.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all arena invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(data []byte) error {
	if err := Layout(data); err != nil {
		return err
	}
	if err := Signatures(data); err != nil {
		return err
	}
	if err := Conservation(data); err != nil {
		return err
	}
	if err := NoAdjacentFree(data); err != nil {
		return err
	}
	return nil
}

type entry struct {
	off uint32
	h   format.Header
}

// walk decodes the list from offset 0. It stops with an error at the first
// header that is out of range or does not advance, so it always terminates.
func walk(check string, data []byte) ([]entry, error) {
	if len(data) < format.MinArenaSize {
		return nil, &ValidationError{
			Type:    check,
			Message: fmt.Sprintf("arena too small: %d bytes (need %d)", len(data), format.MinArenaSize),
			Offset:  -1,
		}
	}

	var out []entry
	off := uint32(0)
	for {
		if !buf.Has(data, int(off), format.HeaderSize) {
			return out, &ValidationError{
				Type:    check,
				Message: fmt.Sprintf("header out of range (arena is %d bytes)", len(data)),
				Offset:  int(off),
			}
		}
		h := format.DecodeHeader(data, int(off))
		out = append(out, entry{off: off, h: h})
		if h.Next == format.NilOffset {
			return out, nil
		}
		if h.Next <= off {
			return out, &ValidationError{
				Type:    check,
				Message: fmt.Sprintf("next link 0x%X does not advance", h.Next),
				Offset:  int(off),
			}
		}
		off = h.Next
	}
}

// Layout validates that headers are aligned, link symmetrically, and tile the
// arena: each block ends exactly where the next header starts and the last
// block ends at the end of the arena.
func Layout(data []byte) error {
	entries, err := walk("Layout", data)
	if err != nil {
		return err
	}

	for i, e := range entries {
		if e.off%format.Alignment != 0 {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("header not %d-byte aligned", format.Alignment),
				Offset:  int(e.off),
			}
		}
		if e.h.Size == 0 || e.h.Size%format.Alignment != 0 {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("payload size %d is not a positive multiple of %d", e.h.Size, format.Alignment),
				Offset:  int(e.off),
			}
		}

		wantPrev := uint32(format.NilOffset)
		if i > 0 {
			wantPrev = entries[i-1].off
		}
		if e.h.Prev != wantPrev {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("prev link 0x%X, expected 0x%X", e.h.Prev, wantPrev),
				Offset:  int(e.off),
				Details: map[string]any{"index": i},
			}
		}

		end := e.h.End(e.off)
		if e.h.Next != format.NilOffset && end != uint64(e.h.Next) {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("block ends at 0x%X but next header is at 0x%X", end, e.h.Next),
				Offset:  int(e.off),
				Details: map[string]any{"size": e.h.Size},
			}
		}
		if e.h.Next == format.NilOffset && end != uint64(len(data)) {
			return &ValidationError{
				Type:    "Layout",
				Message: fmt.Sprintf("last block ends at 0x%X, arena ends at 0x%X", end, len(data)),
				Offset:  int(e.off),
			}
		}
	}
	return nil
}

// Signatures validates that every list entry carries the block signature.
func Signatures(data []byte) error {
	entries, err := walk("Signatures", data)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !format.HasSignature(data, int(e.off)) {
			sig := data[int(e.off)+format.SignatureOffset : int(e.off)+format.SignatureOffset+format.SignatureLen]
			return &ValidationError{
				Type:    "Signatures",
				Message: fmt.Sprintf("invalid signature: got %q, expected %q", sig, format.BlockSignature),
				Offset:  int(e.off),
			}
		}
	}
	return nil
}

// Conservation validates that headers and payloads account for every byte.
func Conservation(data []byte) error {
	entries, err := walk("Conservation", data)
	if err != nil {
		return err
	}
	var total uint64
	for _, e := range entries {
		total += format.HeaderSize + uint64(e.h.Size)
	}
	if total != uint64(len(data)) {
		return &ValidationError{
			Type:    "Conservation",
			Message: fmt.Sprintf("blocks cover %d bytes, arena is %d", total, len(data)),
			Offset:  -1,
			Details: map[string]any{"blocks": len(entries)},
		}
	}
	return nil
}

// NoAdjacentFree validates that no two neighbouring blocks are both free.
func NoAdjacentFree(data []byte) error {
	entries, err := walk("NoAdjacentFree", data)
	if err != nil {
		return err
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].h.InUse && !entries[i].h.InUse {
			return &ValidationError{
				Type:    "NoAdjacentFree",
				Message: fmt.Sprintf("free block follows free block at 0x%X", entries[i-1].off),
				Offset:  int(entries[i].off),
			}
		}
	}
	return nil
}

// Pointer validates that p, a payload offset, names an in-use list entry.
func Pointer(data []byte, p uint32) error {
	if p < format.HeaderSize {
		return &ValidationError{
			Type:    "Pointer",
			Message: fmt.Sprintf("0x%X precedes the first payload", p),
			Offset:  int(p),
		}
	}
	entries, err := walk("Pointer", data)
	if err != nil {
		return err
	}
	off := p - format.HeaderSize
	for _, e := range entries {
		if e.off != off {
			continue
		}
		if !e.h.InUse {
			return &ValidationError{
				Type:    "Pointer",
				Message: "block is free",
				Offset:  int(off),
			}
		}
		return nil
	}
	return &ValidationError{
		Type:    "Pointer",
		Message: fmt.Sprintf("no block header for payload 0x%X", p),
		Offset:  int(off),
	}
}
