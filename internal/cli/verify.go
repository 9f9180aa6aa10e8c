package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cruciblehq/kiln/internal/console"
	"github.com/cruciblehq/kiln/internal/deploy"
)

// Represents the 'kiln verify' command.
type VerifyCmd struct {
	Deployment bool `help:"Check the deployment tree instead of the build tree."`
}

// Checks the filesystem for the expected build outputs.
//
// Reports each artifact as found or missing and fails if any required
// artifact is absent. No recovery is attempted.
func (c *VerifyCmd) Run(ctx context.Context) error {
	cfg, err := loadProject()
	if err != nil {
		return err
	}

	log, err := openRunLog(cfg, "verify")
	if err != nil {
		return err
	}
	defer log.Close()

	expected := deploy.BuildExpectations(cfg)
	if c.Deployment {
		expected = deploy.DeployExpectations(cfg)
	}

	con := console.New(os.Stdout)
	report := deploy.Verify(expected)

	for _, a := range report.Found() {
		con.OK(a.Name)
	}
	for _, a := range report.Missing() {
		con.Warn(fmt.Sprintf("missing: %s (%s)", a.Name, a.Path))
	}

	if !report.Complete() {
		return fmt.Errorf("required artifacts missing")
	}
	return nil
}
