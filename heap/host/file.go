package host

import (
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/internal/buf"
	"github.com/joshuapare/heapkit/internal/mmfile"
)

// File is a Host whose region is a shared mapping of a file. The break is the
// file length; moving it truncates or extends the file and remaps it.
//
// NOT thread-safe.
type File struct {
	path  string
	limit int
	f     *os.File
	m     *mmfile.Mapping
}

// OpenFile opens or creates path as a File host. The initial break is the
// current file length.
func OpenFile(path string, limit int) (*File, error) {
	if limit <= 0 {
		limit = DefaultBreakLimit
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, err
	}
	m, err := mmfile.MapRW(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("host: map %s: %w", path, err)
	}
	return &File{path: path, limit: limit, f: f, m: m}, nil
}

// Path returns the backing file path.
func (h *File) Path() string { return h.path }

// Sbrk implements Host.
func (h *File) Sbrk(delta int) (int, error) {
	prev := len(h.m.Bytes())
	next, ok := buf.AddOverflowSafe(prev, delta)
	if !ok || next < 0 {
		return -1, ErrBadDelta
	}
	if next > h.limit {
		return -1, ErrNoMemory
	}
	if next == prev {
		return prev, nil
	}
	if err := h.m.Resize(next); err != nil {
		return -1, fmt.Errorf("%w: %w", ErrNoMemory, err)
	}
	return prev, nil
}

// Bytes implements Host.
func (h *File) Bytes() []byte { return h.m.Bytes() }

// Sync implements Syncer.
func (h *File) Sync(off, n int) error { return h.m.Sync(off, n) }

// Close unmaps and closes the backing file. The file keeps its contents.
func (h *File) Close() error {
	err := h.m.Close()
	if cerr := h.f.Close(); err == nil {
		err = cerr
	}
	return err
}
