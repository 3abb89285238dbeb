//go:build !unix

package host

// Mmap is unavailable on this platform; every upward Sbrk fails.
type Mmap struct {
	limit int
}

// NewMmap creates an Mmap host. On this platform it cannot grow.
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
	if delta == 0 {
		return 0, nil
	}
	return -1, ErrUnsupported
}

// Bytes implements Host.
func (m *Mmap) Bytes() []byte { return nil }
