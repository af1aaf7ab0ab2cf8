package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "follow":
		os.Exit(runFollow(os.Args[2:]))
	case "highlight":
		os.Exit(runHighlight(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: xdeco <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  follow     Run the focus-follow daemon (warps the pointer on focus change)")
	fmt.Fprintln(w, "  highlight  Flash a labeled banner over the focused window, then exit")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'xdeco <command> --help' for command-specific options.")
}

// newLogger builds the daemon logger at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{Level: lvl}))
}
