// Package verify checks the structural invariants of a free-list arena.
//
// # Overview
//
// The checks read raw arena bytes and decode headers with internal/format, so
// they apply equally to a live allocator's Bytes() and to a file-backed arena
// mapped after the process that wrote it has exited. They never modify data.
//
// Validation categories:
//   - Layout: headers tile the arena, are aligned, and link symmetrically
//   - Conservation: headers plus payloads add up to the arena size
//   - NoAdjacentFree: no two neighbouring blocks are both free
//   - Signatures: every list entry carries the block signature
//   - Pointer: a payload offset names an in-use block
//
// # Quick Start
//
//	if err := verify.AllInvariants(fl.Arena().Bytes()); err != nil {
//	    fmt.Printf("arena corrupt: %v\n", err)
//	}
//
// # ValidationError
//
// Every failure is a *ValidationError carrying the check name, a message, the
// arena offset involved (-1 when none applies) and optional details:
//
//	var verr *verify.ValidationError
//	if errors.As(err, &verr) {
//	    fmt.Printf("%s at 0x%X\n", verr.Type, verr.Offset)
//	}
package verify
