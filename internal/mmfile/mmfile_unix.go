//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/heapkit/internal/format"
)

// Map maps the file at path read-only and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		data = nil
		return err
	}
	return data, cleanup, nil
}

// Mapping is a read-write shared mapping of a whole file that can be resized.
//
// NOT thread-safe.
type Mapping struct {
	f    *os.File
	data []byte
}

// MapRW maps f read-write. The mapping covers the file's current length.
func MapRW(f *os.File) (*Mapping, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	m := &Mapping{f: f}
	if err := m.remap(int(info.Size())); err != nil {
		return nil, err
	}
	return m, nil
}

// Bytes returns the mapped bytes. The slice is invalidated by Resize and Close.
func (m *Mapping) Bytes() []byte { return m.data }

// Resize truncates or extends the file to size bytes and remaps it.
func (m *Mapping) Resize(size int) error {
	if size < 0 {
		return fmt.Errorf("mmfile: negative size %d", size)
	}
	if err := m.unmap(); err != nil {
		return err
	}
	if err := unix.Ftruncate(int(m.f.Fd()), int64(size)); err != nil {
		return fmt.Errorf("mmfile: truncate to %d: %w", size, err)
	}
	return m.remap(size)
}

// Sync flushes the page-aligned range covering [off, off+n) to the file.
func (m *Mapping) Sync(off, n int) error {
	if n <= 0 || len(m.data) == 0 {
		return nil
	}
	start := int(format.TruncPage(int64(off)))
	end := min(int(format.AlignPage(int64(off+n))), len(m.data))
	if start >= end {
		return nil
	}
	return unix.Msync(m.data[start:end], unix.MS_SYNC)
}

// Close unmaps the file. The file itself is left open for the caller.
func (m *Mapping) Close() error {
	return m.unmap()
}

func (m *Mapping) remap(size int) error {
	if size == 0 {
		m.data = nil
		return nil
	}
	data, err := unix.Mmap(int(m.f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return fmt.Errorf("mmfile: mmap %d bytes: %w", size, err)
	}
	m.data = data
	return nil
}

func (m *Mapping) unmap() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
