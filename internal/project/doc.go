// Package project loads the kiln.yaml manifest describing what to build.
//
// The manifest names the main executable, the plugin libraries, the system
// packages the build needs, and the CMake generator and build type. Defaults
// reproduce the Item Editor Qt6 project so the tool runs without any manifest
// at all. A user-level overlay (under the XDG config home) is merged before
// the project manifest, so per-machine settings like timeouts can live
// outside the repository.
package project
