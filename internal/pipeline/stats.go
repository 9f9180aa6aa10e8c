package pipeline

import "time"

// Accumulates build statistics across the run.
//
// The pipeline is single-threaded, so steps mutate the record directly as a
// side effect; it is rendered once by the final summary.
type Stats struct {
	StartTime         time.Time // When the run began.
	PackagesInstalled int       // System packages installed by this run.
	PluginsBuilt      int       // Plugin libraries found after the build.
	PluginsFailed     int       // Plugin libraries expected but missing.
	MainAppBuilt      bool      // Whether the main executable was built.
	DeploymentOK      bool      // Whether the deployment tree was assembled.
	Errors            int       // Compiler error lines seen in captured output.
	Warnings          int       // Compiler warning lines seen in captured output.
	QtVersion         string    // Detected Qt version, empty if unknown.
}

// Creates a new [Stats] with the clock started.
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Elapsed wall-clock time since the run began.
func (s *Stats) Duration() time.Duration {
	return time.Since(s.StartTime)
}
