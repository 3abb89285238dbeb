package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/heapkit/heap/printer"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	capacity    int
	hostKind    string
	backingFile string
	keepArena   bool
	checkFree   bool
	noColor     bool
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "heapctl",
	Short: "Drive and inspect a free-list heap arena",
	Long: `heapctl runs allocation scripts against a fixed-size arena managed by an
explicit free-list allocator, prints the block list, and validates arenas that
were persisted to a file.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", 4096, "Arena size in bytes")
	rootCmd.PersistentFlags().StringVar(&hostKind, "host", hostBreak, "Memory host: break, mmap or file")
	rootCmd.PersistentFlags().StringVar(&backingFile, "file", "", "Backing file for --host file")
	rootCmd.PersistentFlags().
		BoolVar(&keepArena, "keep", false, "With --host file, leave the arena in the file instead of releasing it")
	rootCmd.PersistentFlags().BoolVar(&checkFree, "check-free", false, "Validate every pointer passed to free")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// output returns where command results go: stdout, or nowhere with --quiet.
func output() io.Writer {
	if quiet {
		return io.Discard
	}
	return os.Stdout
}

// newPrinter returns a block-list printer honouring --json.
func newPrinter(w io.Writer) *printer.Printer {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.ShowLinks = verbose
	if !noColor {
		opts.Style = stateStyle
	}
	return printer.New(w, opts)
}

// newLogger returns the allocator logger: warnings only by default, debug
// with --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
