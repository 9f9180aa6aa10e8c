package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Default upper bound on command execution time when none is set.
const DefaultTimeout = 5 * time.Minute

// Describes one external command invocation.
//
// The command is always invoked as an argument vector, never as a shell
// string. Args[0] is the binary name, resolved via PATH.
type Command struct {
	Args    []string      // Argument vector; must not be empty.
	Dir     string        // Working directory. Empty means the current directory.
	Env     []string      // Extra "key=value" entries overlaid on the process environment.
	Timeout time.Duration // Upper bound on execution time. Zero means DefaultTimeout.
	Capture bool          // Capture stdout/stderr instead of streaming to the terminal.
}

// Outcome of a command execution.
//
// A non-zero exit code is reported via Success and ExitCode, never as an
// error: the caller decides how to handle it.
type Result struct {
	Success  bool          // Whether the command exited with code zero.
	ExitCode int           // Exit code, or -1 if the process never ran.
	Stdout   string        // Captured standard output, trimmed of surrounding whitespace.
	Stderr   string        // Captured standard error, trimmed of surrounding whitespace.
	Duration time.Duration // Wall-clock execution time.
}

// Runs a single external command with a bounded timeout.
//
// On timeout the result is a failure with a synthetic "timed out" message in
// Stderr. On any other launch failure (missing binary, permission) the result
// is a failure carrying the error text. All outcomes are logged via the
// default logger, which the CLI wires to both the per-run log file and the
// console.
func Run(ctx context.Context, cmd Command) Result {
	if len(cmd.Args) == 0 {
		return Result{ExitCode: -1, Stderr: "empty command"}
	}

	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	slog.Info("running command", "command", strings.Join(cmd.Args, " "), "dir", cmd.Dir)

	proc := exec.CommandContext(ctx, cmd.Args[0], cmd.Args[1:]...)
	proc.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		proc.Env = append(os.Environ(), cmd.Env...)
	}

	var stdout, stderr bytes.Buffer
	if cmd.Capture {
		proc.Stdout = &stdout
		proc.Stderr = &stderr
	} else {
		proc.Stdout = os.Stdout
		proc.Stderr = os.Stderr
	}

	start := time.Now()
	err := proc.Run()
	elapsed := time.Since(start)

	res := Result{
		Stdout:   strings.TrimSpace(stdout.String()),
		Stderr:   strings.TrimSpace(stderr.String()),
		Duration: elapsed,
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		res.ExitCode = -1
		res.Stderr = fmt.Sprintf("timed out after %s", timeout)
		slog.Error("command timed out", "command", cmd.Args[0], "timeout", timeout)

	case err == nil:
		res.Success = true
		res.ExitCode = 0
		slog.Info("command succeeded", "command", cmd.Args[0], "duration", elapsed)
		if res.Stdout != "" {
			slog.Debug("stdout", "output", res.Stdout)
		}

	default:
		res.ExitCode = exitCode(err)
		if res.ExitCode == -1 && res.Stderr == "" {
			res.Stderr = err.Error()
		}
		slog.Error("command failed",
			"command", cmd.Args[0],
			"exit_code", res.ExitCode,
			"stderr", res.Stderr,
		)
		if res.Stdout != "" {
			slog.Debug("stdout", "output", res.Stdout)
		}
	}

	return res
}

// Extracts the exit code from a command error.
//
// Returns -1 for launch failures, where the process never produced an exit
// status.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
