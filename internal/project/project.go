package project

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cruciblehq/kiln/internal/paths"
)

// A duration that unmarshals from YAML strings like "120s" or "10m".
type Duration time.Duration

// Decodes a YAML scalar into a [Duration].
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%w: invalid duration %q: %w", ErrManifest, raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// The underlying [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Upper bounds for the long-running pipeline steps.
type Timeouts struct {
	Update    Duration `yaml:"update"`    // apt update.
	Install   Duration `yaml:"install"`   // apt install.
	Configure Duration `yaml:"configure"` // cmake configure.
	Build     Duration `yaml:"build"`     // cmake build.
}

// Describes the project being built.
//
// The manifest is read from kiln.yaml in the project root, optionally
// overlaid on a user-level configuration file. Missing fields fall back to
// the defaults, which reproduce the Item Editor project layout.
type Config struct {
	App       string   `yaml:"app"`        // Main executable name.
	Plugins   []string `yaml:"plugins"`    // Plugin library names, without lib prefix or suffix.
	Packages  []string `yaml:"packages"`   // System packages required for the build.
	Generator string   `yaml:"generator"`  // CMake generator.
	BuildType string   `yaml:"build_type"` // CMake build type (e.g. Release).
	Jobs      int      `yaml:"jobs"`       // Parallel jobs passed to the build tool. Zero means NumCPU.
	Timeouts  Timeouts `yaml:"timeouts"`

	// Project root directory. Set by the loader, not the manifest.
	Root string `yaml:"-"`
}

// Loads the project configuration for the given root directory.
//
// Defaults are applied first, then the user-level overlay (if present), then
// the project manifest (if present). Either file may be absent; a present
// but malformed file is an error.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfg.Root = root

	for _, path := range []string{paths.UserConfig(), paths.Manifest(root)} {
		if err := overlay(cfg, path); err != nil {
			return nil, err
		}
	}

	if cfg.Jobs <= 0 {
		cfg.Jobs = runtime.NumCPU()
	}

	return cfg, nil
}

// Merges a YAML file into the config. Missing files are skipped.
func overlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrManifest, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrManifest, path, err)
	}

	return nil
}

// Path to the build directory.
func (c *Config) BuildDir() string {
	return paths.Build(c.Root)
}

// Path to the deployment directory.
func (c *Config) DeployDir() string {
	return paths.Deploy(c.Root)
}

// Path to the per-run log directory.
func (c *Config) LogsDir() string {
	return paths.Logs(c.Root)
}

// File name of a built plugin library (e.g. "libPluginOne.so").
func (c *Config) PluginLib(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".dll"
	}
	return "lib" + name + ".so"
}

// File name of the generated launcher script.
func (c *Config) LauncherName() string {
	return "run_" + strings.ToLower(c.App) + ".sh"
}

// Path to the main executable inside the build tree.
func (c *Config) BuiltExecutable() string {
	return filepath.Join(c.BuildDir(), "src", c.App)
}

// Path where a plugin library lands inside the build tree.
func (c *Config) BuiltPlugin(name string) string {
	return filepath.Join(c.BuildDir(), "plugins", name, c.PluginLib(name))
}
