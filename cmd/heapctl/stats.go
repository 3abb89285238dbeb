package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <script>",
		Short: "Show allocator counters after running a script",
		Long: `The stats command replays a script without echoing each step and then
prints the allocator counters.

Example:
  heapctl stats session.txt
  heapctl stats session.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), args)
		},
	}
}

func runStats(ctx context.Context, args []string) error {
	ops, err := loadScript(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	r := newRunner(s.fl, io.Discard)
	runErr := r.run(ops)

	var printErr error
	if runErr == nil {
		printErr = newPrinter(output()).PrintStats(s.fl.Stats())
	}
	return errors.Join(runErr, printErr, s.finish(orBackground(ctx)))
}
