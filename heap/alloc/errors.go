package alloc

import "errors"

var (
	// ErrNoSpace indicates that no free block large enough was found.
	ErrNoSpace = errors.New("alloc: no free block large enough")

	// ErrBadRef indicates a pointer that does not name a live block.
	// Only reported when Options.CheckFree is set, or when the arena is not held.
	ErrBadRef = errors.New("alloc: bad block reference")

	// ErrDoubleFree indicates a pointer whose block is already free.
	// Only reported when Options.CheckFree is set.
	ErrDoubleFree = errors.New("alloc: block already free")
)
