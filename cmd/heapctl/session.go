package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/heapkit/heap"
	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/dirty"
	"github.com/joshuapare/heapkit/heap/host"
)

const (
	hostBreak = "break"
	hostMmap  = "mmap"
	hostFile  = "file"
)

// session is one allocator over a host chosen by the global flags.
type session struct {
	fl    *alloc.FreeList
	dt    *dirty.Tracker
	host  host.Host
	close func() error
}

func openSession() (*session, error) {
	h, closeHost, err := newHost()
	if err != nil {
		return nil, err
	}

	a, err := heap.NewArena(h, capacity)
	if err != nil {
		_ = closeHost()
		return nil, err
	}
	dt := dirty.NewTracker(a)
	fl, err := alloc.NewFreeList(a, dt, &alloc.Options{
		Logger:    newLogger(),
		CheckFree: checkFree,
	})
	if err != nil {
		_ = closeHost()
		return nil, err
	}

	printVerbose("Host: %s, capacity %d bytes\n", hostKind, capacity)
	return &session{fl: fl, dt: dt, host: h, close: closeHost}, nil
}

// newHost builds the host named by --host. The break and mmap hosts are sized
// to hold exactly one arena; the file host leaves room for one more arena
// after whatever the file already holds.
func newHost() (host.Host, func() error, error) {
	noop := func() error { return nil }

	switch hostKind {
	case hostBreak:
		return host.NewBreak(capacity), noop, nil
	case hostMmap:
		return host.NewMmap(capacity), noop, nil
	case hostFile:
		if backingFile == "" {
			return nil, nil, errors.New("--host file requires --file")
		}
		var existing int
		if info, err := os.Stat(backingFile); err == nil {
			existing = int(info.Size())
		}
		h, err := host.OpenFile(backingFile, existing+capacity)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", backingFile, err)
		}
		return h, h.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown host %q (want %s, %s or %s)", hostKind, hostBreak, hostMmap, hostFile)
	}
}

// finish flushes header writes and either releases the arena or, with --keep
// on a file host, leaves it in the file for later inspection.
func (s *session) finish(ctx context.Context) error {
	var errs []error
	if keepArena && hostKind == hostFile {
		if err := s.dt.Flush(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flush: %w", err))
		}
		if s.fl.Arena().Ready() {
			printVerbose("Arena kept in %s at offset %d\n", backingFile, s.fl.Start())
		}
	} else {
		if err := s.fl.Reset(); err != nil {
			errs = append(errs, err)
		}
		s.dt.Reset()
	}
	if err := s.close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
