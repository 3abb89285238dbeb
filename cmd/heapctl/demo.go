package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// demoScript is the reference walk-through: two allocations that split the
// arena, an oversized request that fails, and two frees that coalesce the
// arena back into one block.
var demoScript = []op{
	{line: 1, kind: opAlloc, name: "p1", size: 10},
	{line: 2, kind: opAlloc, name: "big", size: 5000},
	{line: 3, kind: opAlloc, name: "p2", size: 20},
	{line: 4, kind: opFree, name: "p1"},
	{line: 5, kind: opFree, name: "p2"},
}

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through split, failure and coalescing on a small arena",
		Long: `The demo command runs a fixed sequence of allocations and frees and
prints the block list after every step.

Example:
  heapctl demo
  heapctl demo --capacity 8192 --verbose
  heapctl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context())
		},
	}
}

func runDemo(ctx context.Context) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	out := output()
	r := newRunner(s.fl, out)
	var runErr error
	for i, o := range demoScript {
		if _, ok := r.names[o.name]; o.kind == opFree && !ok {
			// The allocation failed on a small arena; nothing to free.
			continue
		}
		if !jsonOut {
			fmt.Fprintf(out, "\n# step %d\n", i+1)
		}
		if runErr = r.exec(o); runErr != nil {
			break
		}
		if runErr = r.exec(op{kind: opDump}); runErr != nil {
			break
		}
	}
	if runErr == nil {
		runErr = r.exec(op{kind: opVerify})
	}
	return errors.Join(runErr, s.finish(orBackground(ctx)))
}
