package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cruciblehq/kiln/internal"
	"github.com/cruciblehq/kiln/internal/console"
	"github.com/cruciblehq/kiln/internal/pipeline"
	"github.com/cruciblehq/kiln/internal/project"
	"github.com/cruciblehq/kiln/internal/toolchain"
)

// Represents the 'kiln build' command.
type BuildCmd struct{}

// Executes the full build pipeline.
//
// Steps run strictly in order and the pipeline halts at the first failure.
// The final summary is rendered on every exit path, including interruption;
// the process exit code is derived from the returned error.
func (c *BuildCmd) Run(ctx context.Context) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	log, err := openRunLog(cfg, "build_linux")
	if err != nil {
		return err
	}
	defer log.Close()

	con := console.New(os.Stdout)
	printHeader(con, cfg, log.Path)

	r := newRunner(cfg, con)
	results, err := pipeline.Execute(ctx, r.buildSteps())

	con.Summary(r.stats, results)
	con.NextSteps(err == nil, cfg.DeployDir(), cfg.LauncherName(), log.Path)

	return err
}

// Prints the run header with system and project information.
func printHeader(con *console.Console, cfg *project.Config, logPath string) {
	if internal.IsQuiet() {
		return
	}

	distro := toolchain.ReadDistro()

	con.Header(console.HeaderInfo{
		Tool:      fmt.Sprintf("%s %s", internal.Name, internal.VersionString()),
		Distro:    fmt.Sprintf("%s %s (%s)", distro.Name, distro.Version, distro.Codename),
		Arch:      internal.Arch(),
		Root:      cfg.Root,
		BuildDir:  cfg.BuildDir(),
		DeployDir: cfg.DeployDir(),
		Generator: cfg.Generator,
		BuildType: cfg.BuildType,
		LogFile:   filepath.Base(logPath),
	})
}
