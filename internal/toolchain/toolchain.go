package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cruciblehq/kiln/internal/executor"
)

// A detected Qt6 installation.
type Qt struct {
	Dir     string // Installation prefix (e.g. /usr/lib/qt6).
	Qmake   string // Path to the qmake binary that answered the version query.
	Version string // Qt version reported by qmake (e.g. "6.4.2").
}

// Well-known Qt6 prefixes probed before falling back to PATH lookup.
func qtPrefixes() []string {
	prefixes := []string{
		"/usr/lib/qt6",
		"/usr/lib/x86_64-linux-gnu/qt6",
		"/opt/qt6",
		"/usr/local/qt6",
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, v := range []string{"6.5.0", "6.6.0", "6.7.0", "6.8.0"} {
			prefixes = append(prefixes, filepath.Join(home, "Qt", v, "gcc_64"))
		}
	}

	return prefixes
}

// Locates a Qt6 installation.
//
// Each known prefix is probed for bin/qmake6 (then bin/qmake), and the first
// binary reporting a Qt 6 version wins. If no prefix matches, qmake6 is
// resolved via PATH. Returns [ErrQtNotFound] when nothing answers.
func DetectQt(ctx context.Context) (*Qt, error) {
	for _, prefix := range qtPrefixes() {
		for _, name := range []string{"qmake6", "qmake"} {
			qmake := filepath.Join(prefix, "bin", name)
			if _, err := os.Stat(qmake); err != nil {
				continue
			}
			if qt := queryQmake(ctx, qmake, prefix); qt != nil {
				return qt, nil
			}
		}
	}

	// System-wide qmake6 from PATH.
	if qmake, err := exec.LookPath("qmake6"); err == nil {
		prefix := filepath.Dir(filepath.Dir(qmake))
		if qt := queryQmake(ctx, qmake, prefix); qt != nil {
			return qt, nil
		}
	}

	return nil, ErrQtNotFound
}

// Runs "qmake -version" and returns the installation if it reports Qt 6.
func queryQmake(ctx context.Context, qmake, prefix string) *Qt {
	res := executor.Run(ctx, executor.Command{
		Args:    []string{qmake, "-version"},
		Timeout: versionQueryTimeout,
		Capture: true,
	})
	if !res.Success {
		return nil
	}

	version, ok := parseQtVersion(res.Stdout)
	if !ok {
		return nil
	}

	return &Qt{Dir: prefix, Qmake: qmake, Version: version}
}

// Extracts the Qt version from qmake -version output.
//
// Accepts only major version 6. The output looks like:
//
//	QMake version 3.1
//	Using Qt version 6.4.2 in /usr/lib/x86_64-linux-gnu
func parseQtVersion(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		_, rest, found := strings.Cut(line, "Qt version")
		if !found {
			continue
		}

		version := strings.Fields(strings.TrimSpace(rest))
		if len(version) == 0 {
			continue
		}
		if !strings.HasPrefix(version[0], "6") {
			return "", false
		}
		return version[0], true
	}
	return "", false
}

// Environment entries that point the build at the detected Qt installation.
//
// The returned entries are overlaid on the process environment for every
// subsequent toolchain invocation.
func (q *Qt) Environ() []string {
	env := []string{
		"Qt6_DIR=" + q.Dir,
		"CMAKE_PREFIX_PATH=" + q.Dir,
	}

	bin := filepath.Join(q.Dir, "bin")
	if info, err := os.Stat(bin); err == nil && info.IsDir() {
		env = append(env, fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")))
	}

	return env
}
