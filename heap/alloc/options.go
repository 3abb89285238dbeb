package alloc

import (
	"io"
	"log/slog"
	"os"
)

// logAlloc enables debug logging to stderr when no logger is configured.
// Controlled by the HEAPKIT_LOG_ALLOC environment variable.
var logAlloc = os.Getenv("HEAPKIT_LOG_ALLOC") != ""

// Options configures a FreeList.
type Options struct {
	// Logger receives arena lifecycle events at Info and split/coalesce
	// decisions at Debug. Default: discard, or a debug text logger on stderr
	// when HEAPKIT_LOG_ALLOC is set.
	Logger *slog.Logger

	// CheckFree validates every pointer passed to Free and reports ErrBadRef
	// or ErrDoubleFree instead of corrupting the list. Costs one list walk per
	// Free. Default: false.
	CheckFree bool
}

// DefaultOptions returns the options used when nil is passed to a constructor.
func DefaultOptions() Options {
	return Options{Logger: defaultLogger()}
}

func defaultLogger() *slog.Logger {
	if logAlloc {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o *Options) withDefaults() Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Logger == nil {
		out.Logger = defaultLogger()
	}
	return out
}
