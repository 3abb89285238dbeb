// Package printer renders the block list of an arena for humans and tools.
package printer

import (
	"io"
	"iter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/heapkit/heap/alloc"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one human-readable line per block.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// DefaultIndentSize is the indent before each block line in text output.
const DefaultIndentSize = 2

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces before each block line (text format only).
	// Default: 2
	IndentSize int

	// ShowLinks includes prev/next header offsets.
	// Default: false
	ShowLinks bool

	// Summary appends a totals line (text) or a usage object (JSON).
	// Default: true
	Summary bool

	// Style decorates the "used"/"free" label of each block (text format
	// only), e.g. with terminal colors. Nil leaves labels plain.
	Style func(inUse bool, label string) string
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		Summary:    true,
	}
}

// Source is anything with a block list to print: *alloc.FreeList and
// *alloc.Image both qualify.
type Source interface {
	Blocks() iter.Seq[alloc.Block]
	Capacity() int
	Start() int
}

// Printer handles formatted output of arena structures.
type Printer struct {
	opts   Options
	writer io.Writer
	num    *message.Printer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(fl)
func New(w io.Writer, opts Options) *Printer {
	return &Printer{
		opts:   opts,
		writer: w,
		num:    message.NewPrinter(language.English),
	}
}

// Print writes src's block list.
func (p *Printer) Print(src Source) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(src)
	default:
		return p.printText(src)
	}
}

// PrintStats writes allocator counters.
func (p *Printer) PrintStats(s alloc.Stats) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printStatsJSON(s)
	default:
		return p.printStatsText(s)
	}
}
