package toolchain

import (
	"context"
	"strings"
	"time"

	"github.com/cruciblehq/kiln/internal/executor"
)

// Upper bound on toolchain version queries; these are quick local calls.
const versionQueryTimeout = 10 * time.Second

// Queries a tool's version by running it with --version and returning the
// first output line. Returns an empty string if the tool is missing or the
// query fails.
func queryVersion(ctx context.Context, args ...string) string {
	res := executor.Run(ctx, executor.Command{
		Args:    args,
		Timeout: versionQueryTimeout,
		Capture: true,
	})
	if !res.Success {
		return ""
	}

	line, _, _ := strings.Cut(res.Stdout, "\n")
	return strings.TrimSpace(line)
}

// Version line reported by cmake, empty if cmake is unavailable.
func CMakeVersion(ctx context.Context) string {
	return queryVersion(ctx, "cmake", "--version")
}

// Version line reported by gcc, empty if gcc is unavailable.
func GCCVersion(ctx context.Context) string {
	return queryVersion(ctx, "gcc", "--version")
}
