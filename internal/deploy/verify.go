package deploy

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/kiln/internal/project"
)

// A build output whose presence is checked after a build step.
type Expected struct {
	Name     string // Human-readable label (e.g. "main executable", plugin name).
	Path     string // Fixed path where the artifact must exist.
	Required bool   // Whether absence fails the verification.
}

// Result of checking one expected artifact.
type Artifact struct {
	Expected
	Found bool
}

// Outcome of an artifact verification pass.
type Report struct {
	Artifacts []Artifact
}

// Artifacts that were expected but not present.
func (r Report) Missing() []Artifact {
	var missing []Artifact
	for _, a := range r.Artifacts {
		if !a.Found {
			missing = append(missing, a)
		}
	}
	return missing
}

// Present artifacts.
func (r Report) Found() []Artifact {
	var found []Artifact
	for _, a := range r.Artifacts {
		if a.Found {
			found = append(found, a)
		}
	}
	return found
}

// Whether every required artifact is present.
func (r Report) Complete() bool {
	for _, a := range r.Artifacts {
		if a.Required && !a.Found {
			return false
		}
	}
	return true
}

// Checks the filesystem for each expected artifact.
//
// Presence is a plain stat by fixed path; no recovery is attempted. Every
// artifact is reported exactly once, present or not.
func Verify(expected []Expected) Report {
	report := Report{Artifacts: make([]Artifact, 0, len(expected))}

	for _, e := range expected {
		_, err := os.Stat(e.Path)
		found := err == nil

		if found {
			slog.Info("artifact found", "artifact", e.Name, "path", e.Path)
		} else {
			slog.Warn("artifact missing", "artifact", e.Name, "path", e.Path)
		}

		report.Artifacts = append(report.Artifacts, Artifact{Expected: e, Found: found})
	}

	return report
}

// Expected artifacts inside the build tree: the main executable and one
// library per plugin. Only the executable is required; missing plugins are
// reported but tolerated, matching the plugin-optional build.
func BuildExpectations(cfg *project.Config) []Expected {
	expected := []Expected{
		{Name: "main executable", Path: cfg.BuiltExecutable(), Required: true},
	}
	for _, plugin := range cfg.Plugins {
		expected = append(expected, Expected{Name: plugin, Path: cfg.BuiltPlugin(plugin)})
	}
	return expected
}

// Expected artifacts inside the deployment tree.
func DeployExpectations(cfg *project.Config) []Expected {
	deployDir := cfg.DeployDir()

	expected := []Expected{
		{Name: "main executable", Path: filepath.Join(deployDir, cfg.App), Required: true},
		{Name: "launcher script", Path: filepath.Join(deployDir, cfg.LauncherName()), Required: true},
	}
	for _, plugin := range cfg.Plugins {
		expected = append(expected, Expected{
			Name: plugin,
			Path: filepath.Join(deployDir, "plugins", cfg.PluginLib(plugin)),
		})
	}
	return expected
}
