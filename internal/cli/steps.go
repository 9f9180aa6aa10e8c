package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cruciblehq/kiln/internal"
	"github.com/cruciblehq/kiln/internal/buildlog"
	"github.com/cruciblehq/kiln/internal/console"
	"github.com/cruciblehq/kiln/internal/deploy"
	"github.com/cruciblehq/kiln/internal/executor"
	"github.com/cruciblehq/kiln/internal/paths"
	"github.com/cruciblehq/kiln/internal/pipeline"
	"github.com/cruciblehq/kiln/internal/project"
	"github.com/cruciblehq/kiln/internal/toolchain"
)

// Short timeout for quick local queries (sudo probe, dpkg checks).
const probeTimeout = 10 * time.Second

// Holds shared state for the concrete pipeline steps.
//
// The pipeline is single-threaded, so steps mutate the statistics record
// directly. The detected Qt installation is recorded by the toolchain step
// and consumed by the configure and build steps.
type runner struct {
	cfg   *project.Config
	stats *pipeline.Stats
	con   *console.Console
	qt    *toolchain.Qt
}

func newRunner(cfg *project.Config, con *console.Console) *runner {
	return &runner{
		cfg:   cfg,
		stats: pipeline.NewStats(),
		con:   con,
	}
}

// Wraps a step function with a console progress line.
func (r *runner) step(name string, fn func(ctx context.Context) error) pipeline.Step {
	return pipeline.Step{
		Name: name,
		Run: func(ctx context.Context) error {
			if !internal.IsQuiet() {
				r.con.Step(name)
			}
			return fn(ctx)
		},
	}
}

// The full build pipeline, in the order the steps must run.
func (r *runner) buildSteps() []pipeline.Step {
	return []pipeline.Step{
		r.step("check privileges", r.checkPrivileges),
		r.step("update package lists", r.updatePackageLists),
		r.step("install system packages", r.installPackages),
		r.step("detect toolchain", r.detectToolchain),
		r.step("clean build directory", r.cleanBuildDir),
		r.step("configure", r.configure),
		r.step("build", r.build),
		r.step("verify artifacts", r.verifyArtifacts),
		r.step("create deployment", r.createDeployment),
	}
}

// The environment-only pipeline used by 'kiln setup'.
func (r *runner) setupSteps() []pipeline.Step {
	return []pipeline.Step{
		r.step("check privileges", r.checkPrivileges),
		r.step("update package lists", r.updatePackageLists),
		r.step("install system packages", r.installPackages),
		r.step("detect toolchain", r.detectToolchain),
	}
}

// Converts a failed executor result into a step error.
func commandError(what string, res executor.Result) error {
	if res.Stderr != "" {
		return fmt.Errorf("%s: %s", what, res.Stderr)
	}
	return fmt.Errorf("%s: exit code %d", what, res.ExitCode)
}

// Verifies passwordless sudo is available before touching the package
// manager.
func (r *runner) checkPrivileges(ctx context.Context) error {
	res := executor.Run(ctx, executor.Command{
		Args:    []string{"sudo", "-n", "true"},
		Timeout: probeTimeout,
		Capture: true,
	})
	if !res.Success {
		return fmt.Errorf("sudo access required to install system packages; run 'sudo -v' first")
	}
	return nil
}

func (r *runner) updatePackageLists(ctx context.Context) error {
	res := executor.Run(ctx, executor.Command{
		Args:    []string{"sudo", "apt", "update"},
		Timeout: r.cfg.Timeouts.Update.Std(),
		Capture: true,
	})
	if !res.Success {
		return commandError("apt update", res)
	}
	return nil
}

// Installs whichever required packages are not already present.
//
// Presence is checked per package via dpkg so a fully provisioned machine
// makes no install call at all.
func (r *runner) installPackages(ctx context.Context) error {
	var missing []string

	for _, pkg := range r.cfg.Packages {
		res := executor.Run(ctx, executor.Command{
			Args:    []string{"dpkg", "-l", pkg},
			Timeout: probeTimeout,
			Capture: true,
		})
		if !res.Success || !strings.Contains(res.Stdout, "ii") {
			missing = append(missing, pkg)
		}
	}

	if len(missing) == 0 {
		slog.Info("all required packages already installed", "count", len(r.cfg.Packages))
		return nil
	}

	slog.Info("installing packages", "count", len(missing))

	args := append([]string{"sudo", "apt", "install", "-y"}, missing...)
	res := executor.Run(ctx, executor.Command{
		Args:    args,
		Timeout: r.cfg.Timeouts.Install.Std(),
		Capture: true,
	})
	if !res.Success {
		return commandError("apt install", res)
	}

	r.stats.PackagesInstalled = len(missing)
	return nil
}

// Locates Qt6 and records toolchain versions for the summary.
func (r *runner) detectToolchain(ctx context.Context) error {
	qt, err := toolchain.DetectQt(ctx)
	if err != nil {
		return fmt.Errorf("%w; install the qt6 development packages", err)
	}

	r.qt = qt
	r.stats.QtVersion = qt.Version
	slog.Info("qt6 detected", "dir", qt.Dir, "version", qt.Version)

	if v := toolchain.CMakeVersion(ctx); v != "" {
		slog.Debug("cmake", "version", v)
	}
	if v := toolchain.GCCVersion(ctx); v != "" {
		slog.Debug("gcc", "version", v)
	}

	return nil
}

func (r *runner) cleanBuildDir(ctx context.Context) error {
	buildDir := r.cfg.BuildDir()

	if err := os.RemoveAll(buildDir); err != nil {
		return fmt.Errorf("clean build directory: %w", err)
	}
	if err := os.MkdirAll(buildDir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}

	return nil
}

func (r *runner) configure(ctx context.Context) error {
	args := []string{
		"cmake",
		"-G", r.cfg.Generator,
		"-DCMAKE_BUILD_TYPE=" + r.cfg.BuildType,
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
		"-DCMAKE_PREFIX_PATH=" + r.qt.Dir,
		r.cfg.Root,
	}

	res := executor.Run(ctx, executor.Command{
		Args:    args,
		Dir:     r.cfg.BuildDir(),
		Env:     r.qt.Environ(),
		Timeout: r.cfg.Timeouts.Configure.Std(),
		Capture: true,
	})

	r.countDiagnostics(res)

	if !res.Success {
		return commandError("cmake configure", res)
	}
	return nil
}

func (r *runner) build(ctx context.Context) error {
	args := []string{
		"cmake",
		"--build", ".",
		"--config", r.cfg.BuildType,
		"--parallel", strconv.Itoa(r.cfg.Jobs),
	}

	res := executor.Run(ctx, executor.Command{
		Args:    args,
		Dir:     r.cfg.BuildDir(),
		Env:     r.qt.Environ(),
		Timeout: r.cfg.Timeouts.Build.Std(),
		Capture: true,
	})

	r.countDiagnostics(res)

	if !res.Success {
		return commandError("cmake build", res)
	}

	r.stats.MainAppBuilt = true
	return nil
}

// Checks the build tree for the expected outputs.
//
// A missing main executable fails the step; missing plugins are recorded in
// the statistics but tolerated, since plugins are optional.
func (r *runner) verifyArtifacts(ctx context.Context) error {
	report := deploy.Verify(deploy.BuildExpectations(r.cfg))

	for _, a := range report.Artifacts {
		if a.Required {
			continue
		}
		if a.Found {
			r.stats.PluginsBuilt++
		} else {
			r.stats.PluginsFailed++
		}
	}

	if !report.Complete() {
		return fmt.Errorf("main executable not found: %s", r.cfg.BuiltExecutable())
	}
	return nil
}

func (r *runner) createDeployment(ctx context.Context) error {
	if _, err := deploy.Package(r.cfg); err != nil {
		return err
	}

	r.stats.DeploymentOK = true
	return nil
}

// Adds compiler diagnostics from the captured output to the statistics.
func (r *runner) countDiagnostics(res executor.Result) {
	errs, warns := buildlog.CountDiagnostics(res.Stdout + "\n" + res.Stderr)
	r.stats.Errors += errs
	r.stats.Warnings += warns
}
