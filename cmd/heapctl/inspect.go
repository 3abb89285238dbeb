package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/alloc"
	"github.com/joshuapare/heapkit/heap/verify"
	"github.com/joshuapare/heapkit/internal/mmfile"
)

var inspectOffset int

func init() {
	cmd := newInspectCmd()
	cmd.Flags().IntVar(&inspectOffset, "offset", 0, "Arena start within the file")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Validate and print an arena persisted to a file",
		Long: `The inspect command maps a file written with --host file --keep read-only,
checks every structural invariant of the arena it holds, and prints the block
list. The arena spans --capacity bytes from --offset, clipped to the file.

Example:
  heapctl replay session.txt --host file --file arena.bin --keep
  heapctl inspect arena.bin
  heapctl inspect arena.bin --offset 4096 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args)
		},
	}
}

func runInspect(args []string) error {
	path := args[0]
	printVerbose("Mapping: %s\n", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map file: %w", err)
	}
	defer cleanup()

	if inspectOffset < 0 || inspectOffset >= len(data) {
		return fmt.Errorf("offset %d outside %d-byte file", inspectOffset, len(data))
	}
	end := min(inspectOffset+capacity, len(data))
	arena := data[inspectOffset:end:end]

	if err := verify.AllInvariants(arena); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	img := alloc.NewImage(arena, inspectOffset)
	if err := newPrinter(output()).Print(img); err != nil {
		return err
	}
	if !jsonOut {
		printInfo("verify: ok\n")
	}
	return nil
}
