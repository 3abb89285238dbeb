// Package dirty provides page-level dirty tracking for arenas whose host is
// backed by durable storage.
//
// # Overview
//
// The allocator reports every header it rewrites through the DirtyTracker
// interface. The Tracker remembers those byte ranges, rounds them to 4KB
// pages in host coordinates, merges overlaps, and on Flush hands each page
// range to the host's Syncer (msync for file-backed hosts). Hosts without a
// Syncer are skipped, so the same wiring works for in-memory arenas.
//
// # Usage
//
//	a, _ := heap.NewArena(fileHost, 1<<16)
//	dt := dirty.NewTracker(a)
//	fl, _ := alloc.NewFreeList(a, dt, nil)
//
//	p, _ := fl.Alloc(128)
//	copy(fl.Bytes(p), data)
//	dt.Add(int(p), len(data)) // payload writes are the caller's to report
//
//	if err := dt.Flush(ctx); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Tracker is NOT thread-safe. Use it from the goroutine that owns the allocator.
package dirty
