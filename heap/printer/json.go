package printer

import (
	"encoding/json"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// jsonArena represents an arena in JSON format.
type jsonArena struct {
	Start    int         `json:"start"`
	Capacity int         `json:"capacity"`
	Blocks   []jsonBlock `json:"blocks"`
	Usage    *jsonUsage  `json:"usage,omitempty"`
}

// jsonBlock represents one block in JSON format.
type jsonBlock struct {
	Offset     uint32  `json:"offset"`
	Size       uint32  `json:"size"`
	InUse      bool    `json:"in_use"`
	Generation uint8   `json:"generation"`
	Prev       *uint32 `json:"prev,omitempty"`
	Next       *uint32 `json:"next,omitempty"`
}

type jsonUsage struct {
	Blocks        int     `json:"blocks"`
	FreeBlocks    int     `json:"free_blocks"`
	UsedBytes     uint64  `json:"used_bytes"`
	FreeBytes     uint64  `json:"free_bytes"`
	LargestFree   uint32  `json:"largest_free"`
	Overhead      uint64  `json:"overhead"`
	Fragmentation float64 `json:"fragmentation"`
}

type jsonStats struct {
	AllocCalls       int   `json:"alloc_calls"`
	AllocFailures    int   `json:"alloc_failures"`
	FreeCalls        int   `json:"free_calls"`
	SplitCount       int   `json:"splits"`
	CoalesceForward  int   `json:"coalesce_forward"`
	CoalesceBackward int   `json:"coalesce_backward"`
	BlocksInUse      int   `json:"blocks_in_use"`
	BytesInUse       int64 `json:"bytes_in_use"`
}

func (p *Printer) printJSON(src Source) error {
	out := jsonArena{
		Start:    src.Start(),
		Capacity: src.Capacity(),
		Blocks:   []jsonBlock{},
	}
	for b := range src.Blocks() {
		jb := jsonBlock{
			Offset:     b.Off,
			Size:       b.Size,
			InUse:      b.InUse,
			Generation: b.Gen,
		}
		if p.opts.ShowLinks {
			if b.HasPrev() {
				jb.Prev = &b.Prev
			}
			if b.HasNext() {
				jb.Next = &b.Next
			}
		}
		out.Blocks = append(out.Blocks, jb)
	}
	if p.opts.Summary {
		u := alloc.UsageOf(src.Blocks())
		out.Usage = &jsonUsage{
			Blocks:        u.Blocks,
			FreeBlocks:    u.FreeBlocks,
			UsedBytes:     u.UsedBytes,
			FreeBytes:     u.FreeBytes,
			LargestFree:   u.LargestFree,
			Overhead:      u.Overhead,
			Fragmentation: u.Fragmentation(),
		}
	}
	return p.encode(out)
}

func (p *Printer) printStatsJSON(s alloc.Stats) error {
	return p.encode(jsonStats(s))
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
