package alloc

import (
	"iter"

	"github.com/joshuapare/heapkit/internal/format"
)

// Stats holds counters maintained by a FreeList. Reset clears them.
type Stats struct {
	AllocCalls       int   // Total Alloc() calls
	AllocFailures    int   // Alloc() calls that returned ErrNoSpace
	FreeCalls        int   // Total Free() calls, including rejected ones
	SplitCount       int   // Number of block splits
	CoalesceForward  int   // Merges of a freed block with its successor
	CoalesceBackward int   // Merges of a freed block into its predecessor
	BlocksInUse      int   // Blocks currently handed out
	BytesInUse       int64 // Payload bytes currently handed out
}

// Stats returns a copy of the allocator's counters.
func (fl *FreeList) Stats() Stats {
	return fl.stats
}

// Usage summarises a block list at one point in time.
type Usage struct {
	Blocks      int    // All list entries
	FreeBlocks  int    // Entries not in use
	UsedBytes   uint64 // Payload bytes of in-use blocks
	FreeBytes   uint64 // Payload bytes of free blocks
	LargestFree uint32 // Largest free payload, 0 if none
	Overhead    uint64 // Header bytes
}

// Fragmentation returns 1 - LargestFree/FreeBytes: 0 when all free space is
// one block, approaching 1 as it scatters. Zero when nothing is free.
func (u Usage) Fragmentation() float64 {
	if u.FreeBytes == 0 {
		return 0
	}
	return 1 - float64(u.LargestFree)/float64(u.FreeBytes)
}

// UsageOf walks blocks and tallies them.
func UsageOf(blocks iter.Seq[Block]) Usage {
	var u Usage
	for b := range blocks {
		u.Blocks++
		u.Overhead += format.HeaderSize
		if b.InUse {
			u.UsedBytes += uint64(b.Size)
			continue
		}
		u.FreeBlocks++
		u.FreeBytes += uint64(b.Size)
		if b.Size > u.LargestFree {
			u.LargestFree = b.Size
		}
	}
	return u
}

// Usage walks the list and tallies it. It is empty while the arena is not held.
func (fl *FreeList) Usage() Usage {
	return UsageOf(fl.Blocks())
}
