package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/cruciblehq/kiln/internal"
	"github.com/cruciblehq/kiln/internal/buildlog"
	"github.com/cruciblehq/kiln/internal/project"
)

// Represents the root command for the kiln build tool.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Project string     `short:"C" help:"Project root directory." placeholder:"DIR" default:"."`
	Build   BuildCmd   `cmd:"" help:"Run the full build pipeline."`
	Setup   SetupCmd   `cmd:"" help:"Prepare the build environment without building."`
	Verify  VerifyCmd  `cmd:"" help:"Verify build and deployment artifacts."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Build pipeline runner for the Item Editor Qt6 project.\n\nSequences package installation, toolchain detection, CMake configure and build, artifact verification, and deployment as a fail-fast pipeline."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	if RootCmd.Quiet {
		internal.SetQuiet(true)
	}
	if RootCmd.Debug {
		internal.SetDebug(true)
	}

	return kongCtx.Run()
}

// Loads the project configuration for the root selected via -C.
func loadProject() (*project.Config, error) {
	root := RootCmd.Project
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return project.Load(abs)
}

// Opens the per-run log file and installs it as the default slog destination.
//
// Every record lands in the log file at debug level and is echoed to stderr
// at a level driven by the CLI flags, so command outcomes are both persisted
// and visible on the console.
func openRunLog(cfg *project.Config, prefix string) (*buildlog.Log, error) {
	l, err := buildlog.Open(cfg.LogsDir(), prefix)
	if err != nil {
		return nil, err
	}

	handler := buildlog.Tee(
		l.Handler(),
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: consoleLogLevel()}),
	)

	slog.SetDefault(slog.New(handler).With("run", prefix))

	return l, nil
}

// The console echo level for run logging, per the -q and -d flags.
func consoleLogLevel() slog.Level {
	switch {
	case internal.IsDebug():
		return slog.LevelDebug
	case internal.IsQuiet():
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
