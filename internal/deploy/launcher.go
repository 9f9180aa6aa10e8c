package deploy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/kiln/internal/paths"
	"github.com/cruciblehq/kiln/internal/project"
)

// Shell template for the generated launcher script.
//
// The script sets the Qt library and plugin search paths relative to its own
// location before starting the executable, so the deployment tree is
// relocatable.
const launcherTemplate = `#!/bin/bash
# %[1]s - launcher

# Get the directory where this script is located
SCRIPT_DIR="$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)"

# Set library path to include Qt6 libraries
export LD_LIBRARY_PATH="/usr/lib/qt6/lib:/usr/lib/x86_64-linux-gnu/qt6/lib:$LD_LIBRARY_PATH"

# Set plugin path
export QT_PLUGIN_PATH="$SCRIPT_DIR/plugins:/usr/lib/qt6/plugins:/usr/lib/x86_64-linux-gnu/qt6/plugins"

cd "$SCRIPT_DIR"
./%[1]s "$@"
`

// Writes the launcher script into the deployment directory.
func writeLauncher(cfg *project.Config) error {
	path := filepath.Join(cfg.DeployDir(), cfg.LauncherName())
	script := fmt.Sprintf(launcherTemplate, cfg.App)

	if err := os.WriteFile(path, []byte(script), paths.ExecutableMode); err != nil {
		return fmt.Errorf("%w: launcher script: %w", ErrDeploy, err)
	}

	slog.Info("wrote launcher script", "path", path)
	return nil
}
