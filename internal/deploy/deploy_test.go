package deploy

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cruciblehq/kiln/internal/project"
)

func testConfig(t *testing.T) *project.Config {
	t.Helper()
	cfg := project.Default()
	cfg.Root = t.TempDir()
	return cfg
}

func TestPackageAssemblesDeploymentTree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("launcher script is POSIX-only")
	}

	cfg := testConfig(t)
	touch(t, cfg.BuiltExecutable())
	touch(t, cfg.BuiltPlugin("PluginOne"))
	touch(t, cfg.BuiltPlugin("PluginThree"))

	deployed, err := Package(cfg)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	if deployed != 2 {
		t.Fatalf("deployed = %d, want 2", deployed)
	}

	exe := filepath.Join(cfg.DeployDir(), cfg.App)
	info, err := os.Stat(exe)
	if err != nil {
		t.Fatalf("executable not deployed: %v", err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Fatalf("executable mode = %v, want executable bits", info.Mode())
	}

	for _, plugin := range []string{"PluginOne", "PluginThree"} {
		lib := filepath.Join(cfg.DeployDir(), "plugins", cfg.PluginLib(plugin))
		if _, err := os.Stat(lib); err != nil {
			t.Fatalf("plugin %s not deployed: %v", plugin, err)
		}
	}

	// PluginTwo was never built and must be skipped, not fabricated.
	lib := filepath.Join(cfg.DeployDir(), "plugins", cfg.PluginLib("PluginTwo"))
	if _, err := os.Stat(lib); err == nil {
		t.Fatal("unbuilt plugin appeared in deployment")
	}
}

func TestPackageWritesLauncher(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("launcher script is POSIX-only")
	}

	cfg := testConfig(t)
	touch(t, cfg.BuiltExecutable())

	if _, err := Package(cfg); err != nil {
		t.Fatalf("Package: %v", err)
	}

	path := filepath.Join(cfg.DeployDir(), cfg.LauncherName())
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("launcher not written: %v", err)
	}

	script := string(data)
	if !strings.HasPrefix(script, "#!/bin/bash") {
		t.Fatal("launcher missing shebang")
	}
	if !strings.Contains(script, "QT_PLUGIN_PATH") {
		t.Fatal("launcher missing QT_PLUGIN_PATH export")
	}
	if !strings.Contains(script, "./"+cfg.App) {
		t.Fatal("launcher does not start the executable")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Fatalf("launcher mode = %v, want executable bits", info.Mode())
	}
}

func TestPackageMissingExecutable(t *testing.T) {
	cfg := testConfig(t)

	if _, err := Package(cfg); !errors.Is(err, ErrDeploy) {
		t.Fatalf("error = %v, want ErrDeploy", err)
	}
}

func TestPackageReplacesPreviousDeployment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("launcher script is POSIX-only")
	}

	cfg := testConfig(t)
	touch(t, cfg.BuiltExecutable())

	stale := filepath.Join(cfg.DeployDir(), "stale.txt")
	touch(t, stale)

	if _, err := Package(cfg); err != nil {
		t.Fatalf("Package: %v", err)
	}

	if _, err := os.Stat(stale); err == nil {
		t.Fatal("stale file survived redeployment")
	}
}
