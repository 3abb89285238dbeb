package heap

import (
	"errors"
	"fmt"
)

var (
	// ErrArenaInit indicates the host refused to provide the arena.
	ErrArenaInit = errors.New("heap: arena could not be created")

	// ErrBadCapacity indicates a capacity outside [format.MinArenaSize, format.MaxArenaSize]
	// or one that is not a multiple of format.Alignment.
	ErrBadCapacity = errors.New("heap: invalid arena capacity")
)

// ArenaInitError reports a failed Acquire. It matches both ErrArenaInit and
// the host's own error under errors.Is.
type ArenaInitError struct {
	Capacity int
	Err      error
}

func (e *ArenaInitError) Error() string {
	return fmt.Sprintf("heap: cannot acquire %d-byte arena: %v", e.Capacity, e.Err)
}

func (e *ArenaInitError) Unwrap() []error {
	return []error{ErrArenaInit, e.Err}
}
