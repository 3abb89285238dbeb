package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReplayCmd())
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Run an allocation script",
		Long: `The replay command runs a line-oriented allocation script against a fresh
arena. Each line is one of:

  alloc <name> <size>   allocate size bytes and remember the pointer as name
  free <name>           release the pointer remembered as name
  reset                 release the arena and forget every name
  dump                  print the block list
  verify                check every structural invariant

Example:
  heapctl replay session.txt
  heapctl replay session.txt --check-free --json
  heapctl replay session.txt --host file --file arena.bin --keep`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), args)
		},
	}
}

func runReplay(ctx context.Context, args []string) error {
	ops, err := loadScript(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	r := newRunner(s.fl, output())
	runErr := r.run(ops)
	return errors.Join(runErr, s.finish(orBackground(ctx)))
}

func loadScript(path string) ([]op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	printVerbose("Loading script: %s\n", path)
	ops, err := parseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ops, nil
}

func orBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
