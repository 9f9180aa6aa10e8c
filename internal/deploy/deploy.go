package deploy

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/kiln/internal/paths"
	"github.com/cruciblehq/kiln/internal/project"
)

// Assembles the deployment tree from the build outputs.
//
// The deployment directory is recreated from scratch: the main executable is
// copied to the top level, plugin libraries into plugins/, and a launcher
// script is generated alongside. Plugins missing from the build tree are
// skipped; a missing main executable is an error. Returns the number of
// plugins deployed.
func Package(cfg *project.Config) (int, error) {
	deployDir := cfg.DeployDir()

	if err := os.RemoveAll(deployDir); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeploy, err)
	}
	if err := os.MkdirAll(deployDir, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeploy, err)
	}

	exe := filepath.Join(deployDir, cfg.App)
	if err := copyFile(cfg.BuiltExecutable(), exe, paths.ExecutableMode); err != nil {
		return 0, fmt.Errorf("%w: main executable: %w", ErrDeploy, err)
	}
	slog.Info("deployed main executable", "path", exe)

	pluginDir := filepath.Join(deployDir, "plugins")
	if err := os.MkdirAll(pluginDir, paths.DefaultDirMode); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDeploy, err)
	}

	deployed := 0
	for _, plugin := range cfg.Plugins {
		src := cfg.BuiltPlugin(plugin)
		if _, err := os.Stat(src); err != nil {
			slog.Warn("plugin not built, skipping", "plugin", plugin)
			continue
		}

		dest := filepath.Join(pluginDir, cfg.PluginLib(plugin))
		if err := copyFile(src, dest, paths.DefaultFileMode); err != nil {
			return deployed, fmt.Errorf("%w: plugin %s: %w", ErrDeploy, plugin, err)
		}

		slog.Info("deployed plugin", "plugin", plugin)
		deployed++
	}

	if err := writeLauncher(cfg); err != nil {
		return deployed, err
	}

	return deployed, nil
}

// Copies a single file, creating dest with the given mode.
func copyFile(src, dest string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
