package heap

import (
	"errors"
	"fmt"

	"github.com/joshuapare/heapkit/heap/host"
	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Arena is one fixed-capacity region obtained from a Host.
//
// NOT thread-safe.
type Arena struct {
	host     host.Host
	capacity int
	start    int
	ready    bool
}

// NewArena creates an arena of capacity bytes on h. No memory is requested
// until Acquire.
func NewArena(h host.Host, capacity int) (*Arena, error) {
	if h == nil {
		return nil, errors.New("heap: nil host")
	}
	if capacity < format.MinArenaSize || uint64(capacity) > format.MaxArenaSize {
		return nil, fmt.Errorf("%w: %d (want %d..%d)",
			ErrBadCapacity, capacity, format.MinArenaSize, uint64(format.MaxArenaSize))
	}
	if capacity&format.AlignmentMask != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrBadCapacity, capacity, format.Alignment)
	}
	return &Arena{host: h, capacity: capacity}, nil
}

// Acquire requests Capacity bytes from the host. It is a no-op once the arena
// is held. Any failure is an *ArenaInitError.
func (a *Arena) Acquire() error {
	if a.ready {
		return nil
	}
	prev, err := a.host.Sbrk(a.capacity)
	if err != nil {
		return &ArenaInitError{Capacity: a.capacity, Err: err}
	}
	if _, ok := buf.Within(len(a.host.Bytes()), prev, a.capacity); !ok {
		// The host claims success but the region does not cover the grant.
		_, _ = a.host.Sbrk(-a.capacity)
		return &ArenaInitError{
			Capacity: a.capacity,
			Err:      fmt.Errorf("host returned break %d with %d bytes mapped", prev, len(a.host.Bytes())),
		}
	}
	a.start = prev
	a.ready = true
	return nil
}

// Release hands the arena back to the host. All offsets into the arena become
// meaningless. Releasing an arena that is not held is a no-op. The arena is
// marked released even when the host reports an error.
func (a *Arena) Release() error {
	if !a.ready {
		return nil
	}
	a.ready = false
	a.start = 0
	if _, err := a.host.Sbrk(-a.capacity); err != nil {
		return fmt.Errorf("heap: release %d-byte arena: %w", a.capacity, err)
	}
	return nil
}

// Ready reports whether the arena is currently held.
func (a *Arena) Ready() bool { return a.ready }

// Capacity returns the arena size in bytes.
func (a *Arena) Capacity() int { return a.capacity }

// Start returns the arena's offset inside the host region, i.e. the break the
// host reported before granting it. Zero when the arena is not held.
func (a *Arena) Start() int { return a.start }

// Host returns the host the arena is carved from.
func (a *Arena) Host() host.Host { return a.host }

// Bytes returns the arena's bytes, or nil when it is not held. The slice's
// capacity is clipped to the arena.
func (a *Arena) Bytes() []byte {
	if !a.ready {
		return nil
	}
	data, _ := buf.Window(a.host.Bytes(), a.start, a.capacity)
	return data
}
