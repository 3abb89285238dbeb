package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/printer"
	"github.com/joshuapare/heapkit/heap/verify"
)

// runner executes script ops against one allocator, tracking named pointers.
type runner struct {
	fl    *alloc.FreeList
	names map[string]alloc.Ptr
	out   io.Writer
	pr    *printer.Printer
	echo  bool // print a line per op; off for JSON so only documents reach out
}

func newRunner(fl *alloc.FreeList, out io.Writer) *runner {
	return &runner{
		fl:    fl,
		names: make(map[string]alloc.Ptr),
		out:   out,
		pr:    newPrinter(out),
		echo:  !jsonOut,
	}
}

func (r *runner) run(ops []op) error {
	for _, o := range ops {
		if err := r.exec(o); err != nil {
			return fmt.Errorf("line %d: %w", o.line, err)
		}
	}
	return nil
}

// exec runs one op. Running out of space is reported and is not an error.
func (r *runner) exec(o op) error {
	switch o.kind {
	case opAlloc:
		if _, ok := r.names[o.name]; ok {
			return fmt.Errorf("%s is already allocated", o.name)
		}
		p, err := r.fl.Alloc(o.size)
		if errors.Is(err, alloc.ErrNoSpace) {
			r.say("alloc %s %d: no space\n", o.name, o.size)
			return nil
		}
		if err != nil {
			return err
		}
		r.names[o.name] = p
		r.say("alloc %s %d -> %d\n", o.name, o.size, p)
	case opFree:
		p, ok := r.names[o.name]
		if !ok {
			return fmt.Errorf("%s is not allocated", o.name)
		}
		if err := r.fl.Free(p); err != nil {
			return err
		}
		delete(r.names, o.name)
		r.say("free %s (%d)\n", o.name, p)
	case opReset:
		if err := r.fl.Reset(); err != nil {
			return err
		}
		clear(r.names)
		r.say("reset\n")
	case opDump:
		return r.pr.Print(r.fl)
	case opVerify:
		if !r.fl.Arena().Ready() {
			r.say("verify: arena not initialised\n")
			return nil
		}
		if err := verify.AllInvariants(r.fl.Arena().Bytes()); err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		r.say("verify: ok\n")
	}
	return nil
}

func (r *runner) say(format string, args ...any) {
	if r.echo {
		fmt.Fprintf(r.out, format, args...)
	}
}
