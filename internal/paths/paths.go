package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "kiln"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644

	// Permission mode for executables and launcher scripts.
	ExecutableMode os.FileMode = 0755
)

// Path to the build directory under the given project root.
func Build(root string) string {
	return filepath.Join(root, "build")
}

// Path to the deployment directory under the given project root.
func Deploy(root string) string {
	return filepath.Join(root, "deploy_linux")
}

// Path to the directory holding per-run log files under the given project
// root.
func Logs(root string) string {
	return filepath.Join(root, "logs")
}

// Default path to the project manifest under the given project root.
func Manifest(root string) string {
	return filepath.Join(root, "kiln.yaml")
}

// Path to the optional user-level configuration overlay.
//
//	Linux:   ~/.config/kiln/kiln.yaml
//	macOS:   ~/Library/Application Support/kiln/kiln.yaml
func UserConfig() string {
	return filepath.Join(xdg.ConfigHome, toolName, "kiln.yaml")
}
