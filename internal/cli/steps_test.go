package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cruciblehq/kiln/internal"
	"github.com/cruciblehq/kiln/internal/console"
	"github.com/cruciblehq/kiln/internal/executor"
	"github.com/cruciblehq/kiln/internal/project"
)

func testRunner(t *testing.T) (*runner, *bytes.Buffer) {
	t.Helper()

	cfg := project.Default()
	cfg.Root = t.TempDir()

	var buf bytes.Buffer
	return newRunner(cfg, console.New(&buf)), &buf
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestConsoleLogLevel(t *testing.T) {
	t.Cleanup(func() {
		internal.SetQuiet(false)
		internal.SetDebug(false)
	})

	tests := []struct {
		name  string
		quiet bool
		debug bool
		want  slog.Level
	}{
		{name: "default", want: slog.LevelInfo},
		{name: "quiet", quiet: true, want: slog.LevelWarn},
		{name: "debug", debug: true, want: slog.LevelDebug},
		{name: "debug wins over quiet", quiet: true, debug: true, want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			internal.SetQuiet(tt.quiet)
			internal.SetDebug(tt.debug)

			if got := consoleLogLevel(); got != tt.want {
				t.Fatalf("consoleLogLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommandError(t *testing.T) {
	err := commandError("cmake build", executor.Result{ExitCode: 2, Stderr: "no such target"})
	if !strings.Contains(err.Error(), "no such target") {
		t.Fatalf("error = %v, want captured stderr", err)
	}

	err = commandError("cmake build", executor.Result{ExitCode: 2})
	if !strings.Contains(err.Error(), "exit code 2") {
		t.Fatalf("error = %v, want exit code", err)
	}
}

func TestVerifyArtifactsCountsPlugins(t *testing.T) {
	r, _ := testRunner(t)

	touch(t, r.cfg.BuiltExecutable())
	touch(t, r.cfg.BuiltPlugin("PluginOne"))

	if err := r.verifyArtifacts(context.Background()); err != nil {
		t.Fatalf("verifyArtifacts: %v", err)
	}

	if r.stats.PluginsBuilt != 1 {
		t.Fatalf("PluginsBuilt = %d, want 1", r.stats.PluginsBuilt)
	}
	if r.stats.PluginsFailed != 2 {
		t.Fatalf("PluginsFailed = %d, want 2", r.stats.PluginsFailed)
	}
}

func TestVerifyArtifactsMissingExecutable(t *testing.T) {
	r, _ := testRunner(t)

	if err := r.verifyArtifacts(context.Background()); err == nil {
		t.Fatal("verifyArtifacts succeeded with no executable")
	}
}

func TestCleanBuildDir(t *testing.T) {
	r, _ := testRunner(t)

	stale := filepath.Join(r.cfg.BuildDir(), "stale.o")
	touch(t, stale)

	if err := r.cleanBuildDir(context.Background()); err != nil {
		t.Fatalf("cleanBuildDir: %v", err)
	}

	if _, err := os.Stat(stale); err == nil {
		t.Fatal("stale object survived clean")
	}
	if info, err := os.Stat(r.cfg.BuildDir()); err != nil || !info.IsDir() {
		t.Fatal("build directory not recreated")
	}
}

func TestBuildStepsOrder(t *testing.T) {
	r, _ := testRunner(t)

	steps := r.buildSteps()
	want := []string{
		"check privileges",
		"update package lists",
		"install system packages",
		"detect toolchain",
		"clean build directory",
		"configure",
		"build",
		"verify artifacts",
		"create deployment",
	}

	if len(steps) != len(want) {
		t.Fatalf("len(steps) = %d, want %d", len(steps), len(want))
	}
	for i, name := range want {
		if steps[i].Name != name {
			t.Fatalf("steps[%d] = %q, want %q", i, steps[i].Name, name)
		}
	}
}

func TestCountDiagnosticsAccumulates(t *testing.T) {
	r, _ := testRunner(t)

	r.countDiagnostics(executor.Result{
		Stdout: "main.cpp:1:1: warning: unused",
		Stderr: "main.cpp:2:1: error: expected ';'",
	})
	r.countDiagnostics(executor.Result{
		Stderr: "CMake Error at CMakeLists.txt:3",
	})

	if r.stats.Errors != 2 {
		t.Fatalf("Errors = %d, want 2", r.stats.Errors)
	}
	if r.stats.Warnings != 1 {
		t.Fatalf("Warnings = %d, want 1", r.stats.Warnings)
	}
}
