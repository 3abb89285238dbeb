//go:build !unix

package mmfile

import (
	"errors"
	"os"
)

// ErrUnsupported is returned by MapRW on platforms without mmap.
var ErrUnsupported = errors.New("mmfile: read-write mapping not supported on this platform")

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}

// Mapping is unavailable on this platform.
type Mapping struct{}

// MapRW always fails on this platform.
func MapRW(*os.File) (*Mapping, error) { return nil, ErrUnsupported }

// Bytes returns nil.
func (m *Mapping) Bytes() []byte { return nil }

// Resize always fails on this platform.
func (m *Mapping) Resize(int) error { return ErrUnsupported }

// Sync is a no-op.
func (m *Mapping) Sync(int, int) error { return nil }

// Close is a no-op.
func (m *Mapping) Close() error { return nil }
