package executor

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRunCapturesStdout(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"sh", "-c", "echo hello world"},
		Capture: true,
	})

	if !res.Success {
		t.Fatalf("Success = false, stderr = %q", res.Stderr)
	}
	if res.ExitCode != 0 {
		t.Fatalf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Stdout != "hello world" {
		t.Fatalf("Stdout = %q, want %q", res.Stdout, "hello world")
	}
}

func TestRunCapturesStderr(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"sh", "-c", "echo oops >&2; exit 3"},
		Capture: true,
	})

	if res.Success {
		t.Fatal("Success = true for non-zero exit")
	}
	if res.ExitCode != 3 {
		t.Fatalf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Stderr != "oops" {
		t.Fatalf("Stderr = %q, want %q", res.Stderr, "oops")
	}
}

func TestRunTrimsSurroundingWhitespace(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"sh", "-c", "printf '\\n  trimmed  \\n\\n'"},
		Capture: true,
	})

	if res.Stdout != "trimmed" {
		t.Fatalf("Stdout = %q, want %q", res.Stdout, "trimmed")
	}
}

func TestRunTimeout(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"sleep", "10"},
		Timeout: 100 * time.Millisecond,
		Capture: true,
	})

	if res.Success {
		t.Fatal("Success = true for timed out command")
	}
	if !strings.Contains(res.Stderr, "timed out after") {
		t.Fatalf("Stderr = %q, want timeout message", res.Stderr)
	}
	if res.ExitCode != -1 {
		t.Fatalf("ExitCode = %d, want -1", res.ExitCode)
	}
}

func TestRunMissingBinary(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"definitely-not-a-real-binary-kiln"},
		Capture: true,
	})

	if res.Success {
		t.Fatal("Success = true for missing binary")
	}
	if res.ExitCode != -1 {
		t.Fatalf("ExitCode = %d, want -1", res.ExitCode)
	}
	if res.Stderr == "" {
		t.Fatal("Stderr empty, want launch failure text")
	}
}

func TestRunEmptyCommand(t *testing.T) {
	res := Run(context.Background(), Command{})
	if res.Success {
		t.Fatal("Success = true for empty command")
	}
	if res.Stderr != "empty command" {
		t.Fatalf("Stderr = %q, want %q", res.Stderr, "empty command")
	}
}

func TestRunWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	res := Run(context.Background(), Command{
		Args:    []string{"pwd"},
		Dir:     dir,
		Capture: true,
	})

	if !res.Success {
		t.Fatalf("Success = false, stderr = %q", res.Stderr)
	}
	if res.Stdout != dir {
		t.Fatalf("Stdout = %q, want %q", res.Stdout, dir)
	}
}

func TestRunEnvOverlay(t *testing.T) {
	res := Run(context.Background(), Command{
		Args:    []string{"sh", "-c", "echo $KILN_TEST_VAR"},
		Env:     []string{"KILN_TEST_VAR=overlaid"},
		Capture: true,
	})

	if res.Stdout != "overlaid" {
		t.Fatalf("Stdout = %q, want %q", res.Stdout, "overlaid")
	}
}

func TestExitCode(t *testing.T) {
	if code := exitCode(context.Canceled); code != -1 {
		t.Fatalf("exitCode = %d, want -1 for non-exit error", code)
	}
}
