package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/internal/format"
)

func (p *Printer) printText(src Source) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	if _, err := p.num.Fprintf(p.writer, "arena start=%d capacity=%d\n", src.Start(), src.Capacity()); err != nil {
		return err
	}

	for b := range src.Blocks() {
		state := "free"
		if b.InUse {
			state = "used"
		}
		if p.opts.Style != nil {
			state = p.opts.Style(b.InUse, state)
		}
		line := p.num.Sprintf("%s%s  %s  %8d  gen %d", indent, hexOffset(b.Off), state, b.Size, b.Gen)
		if p.opts.ShowLinks {
			line += fmt.Sprintf("  prev %s next %s", link(b.Prev), link(b.Next))
		}
		if _, err := fmt.Fprintln(p.writer, line); err != nil {
			return err
		}
	}

	if !p.opts.Summary {
		return nil
	}
	u := alloc.UsageOf(src.Blocks())
	_, err := p.num.Fprintf(p.writer,
		"blocks=%d used=%d (%d bytes) free=%d (%d bytes) largest=%d overhead=%d\n",
		u.Blocks, u.Blocks-u.FreeBlocks, u.UsedBytes, u.FreeBlocks, u.FreeBytes, u.LargestFree, u.Overhead)
	return err
}

func (p *Printer) printStatsText(s alloc.Stats) error {
	_, err := p.num.Fprintf(p.writer,
		"alloc calls:       %d (%d failed)\n"+
			"free calls:        %d\n"+
			"splits:            %d\n"+
			"coalesce forward:  %d\n"+
			"coalesce backward: %d\n"+
			"in use:            %d blocks, %d bytes\n",
		s.AllocCalls, s.AllocFailures, s.FreeCalls, s.SplitCount,
		s.CoalesceForward, s.CoalesceBackward, s.BlocksInUse, s.BytesInUse)
	return err
}

func hexOffset(off uint32) string {
	return fmt.Sprintf("0x%04X", off)
}

func link(off uint32) string {
	if off == format.NilOffset {
		return "-"
	}
	return hexOffset(off)
}
