package alloc

import "sync"

// Locked serialises access to a FreeList so it can be shared between
// goroutines. Pointers and payload slices are still owned by the caller;
// Locked only protects the list itself.
type Locked struct {
	mu sync.Mutex
	fl *FreeList
}

// NewLocked wraps fl. fl must not be used directly afterwards.
func NewLocked(fl *FreeList) *Locked {
	return &Locked{fl: fl}
}

func (l *Locked) Init() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fl.Init()
}

func (l *Locked) Alloc(size uint32) (Ptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fl.Alloc(size)
}

func (l *Locked) Free(p Ptr) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fl.Free(p)
}

func (l *Locked) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fl.Reset()
}

// Stats returns a copy of the wrapped list's counters.
func (l *Locked) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fl.Stats()
}

// Do runs fn with the lock held, for sequences that must not interleave
// with other callers, such as Alloc followed by writing the payload.
func (l *Locked) Do(fn func(fl *FreeList) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.fl)
}
