//go:build unix

package host

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/format"
)

// Mmap is a Host backed by one anonymous private mapping of limit bytes.
//
// The mapping is created on the first upward move. Whole pages given back by
// a downward move are released with MADV_DONTNEED; the mapping is removed once
// the break reaches zero. Memory above the old break is zero when granted.
//
// NOT thread-safe.
type Mmap struct {
	limit int
	mem   []byte
	brk   int
}

// NewMmap creates an Mmap host that refuses to grow past limit bytes.
func NewMmap(limit int) *Mmap {
	if limit <= 0 {
		limit = DefaultBreakLimit
	}
	return &Mmap{limit: limit}
}

// Limit returns the maximum break.
func (m *Mmap) Limit() int { return m.limit }

// Sbrk implements Host.
func (m *Mmap) Sbrk(delta int) (int, error) {
	prev := m.brk
	next, ok := buf.AddOverflowSafe(prev, delta)
	if !ok || next < 0 {
		return -1, ErrBadDelta
	}
	if next > m.limit {
		return -1, ErrNoMemory
	}
	if next > prev && m.mem == nil {
		mem, err := unix.Mmap(-1, 0, m.limit, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
		if err != nil {
			return -1, fmt.Errorf("%w: mmap %d bytes: %w", ErrNoMemory, m.limit, err)
		}
		m.mem = mem
	}
	if next > prev {
		// Whole pages above the old break are already zero; only the tail of
		// the partially used page may hold stale bytes.
		clear(m.mem[prev:min(next, int(format.AlignPage(int64(prev))))])
	}
	if next < prev {
		if next == 0 {
			if err := unix.Munmap(m.mem); err != nil {
				return -1, fmt.Errorf("host: munmap: %w", err)
			}
			m.mem = nil
		} else if start := int(format.AlignPage(int64(next))); start < prev {
			if err := unix.Madvise(m.mem[start:prev], unix.MADV_DONTNEED); err != nil {
				return -1, fmt.Errorf("host: madvise: %w", err)
			}
		}
	}
	m.brk = next
	return prev, nil
}

// Bytes implements Host.
func (m *Mmap) Bytes() []byte {
	if m.mem == nil {
		return nil
	}
	return m.mem[:m.brk:m.brk]
}

// Sync implements Syncer. The mapping is anonymous, so msync has nothing to
// write back; it still validates the range against the live mapping.
func (m *Mmap) Sync(off, n int) error {
	if n <= 0 || m.mem == nil {
		return nil
	}
	start := int(format.TruncPage(int64(off)))
	end := min(int(format.AlignPage(int64(off+n))), m.brk)
	if start < 0 || start >= end {
		return nil
	}
	if err := unix.Msync(m.mem[start:end], unix.MS_SYNC); err != nil {
		return fmt.Errorf("host: msync: %w", err)
	}
	return nil
}
