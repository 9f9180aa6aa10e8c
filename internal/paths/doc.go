// Provides well-known paths for the build pipeline.
//
// Project-scoped paths (build, deploy, logs, manifest) are resolved relative
// to the project root. The user-level configuration overlay follows XDG
// conventions on Linux and platform-native conventions on macOS and Windows,
// with "kiln" as the subdirectory under each base path.
package paths
