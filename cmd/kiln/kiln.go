package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/kiln/internal"
	"github.com/cruciblehq/kiln/internal/cli"
)

// The entry point for the kiln build tool.
//
// Initializes logging and executes the root command. The process exits 0 on
// full pipeline success and 1 on any failure or interruption.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("kiln is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates the startup logger seeded from build-time linker flags.
//
// Pipeline subcommands replace the default logger with one backed by the
// per-run log file once it is open.
func logger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})
	return slog.New(handler).With("tool", internal.Name)
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelError
	}
	return slog.LevelWarn
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
