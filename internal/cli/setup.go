package cli

import (
	"context"
	"os"

	"github.com/cruciblehq/kiln/internal/console"
	"github.com/cruciblehq/kiln/internal/pipeline"
)

// Represents the 'kiln setup' command.
type SetupCmd struct{}

// Prepares the build environment without building.
//
// Runs the package and toolchain steps only: apt update, install the
// required system packages, and verify Qt6, CMake, and gcc are usable.
func (c *SetupCmd) Run(ctx context.Context) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	log, err := openRunLog(cfg, "setup_ubuntu")
	if err != nil {
		return err
	}
	defer log.Close()

	con := console.New(os.Stdout)
	printHeader(con, cfg, log.Path)

	r := newRunner(cfg, con)
	results, err := pipeline.Execute(ctx, r.setupSteps())

	con.SetupSummary(r.stats, results)

	return err
}
