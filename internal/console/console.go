package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cruciblehq/kiln/internal/pipeline"
)

// Renders human-readable progress and summary output.
//
// Console output is for people; the machine-readable record of a run is the
// per-run log file.
type Console struct {
	out    io.Writer
	styles styles
}

// Creates a console writing to the given stream.
func New(out io.Writer) *Console {
	return &Console{out: out, styles: defaultStyles()}
}

// System and project information shown in the run header.
type HeaderInfo struct {
	Tool      string // Tool name and version.
	Distro    string // Distribution name and version.
	Arch      string // Host architecture.
	Root      string // Project root.
	BuildDir  string
	DeployDir string
	Generator string
	BuildType string
	LogFile   string
}

// Prints the run header panel.
func (c *Console) Header(info HeaderInfo) {
	var b strings.Builder

	b.WriteString(c.styles.Title.Render(info.Tool) + "\n\n")

	rows := []struct{ label, value string }{
		{"Distribution", info.Distro},
		{"Architecture", info.Arch},
		{"Project", info.Root},
		{"Build dir", info.BuildDir},
		{"Deploy dir", info.DeployDir},
		{"Generator", info.Generator},
		{"Build type", info.BuildType},
		{"Log file", info.LogFile},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", c.styles.Label.Render(row.label+":"), row.value))
	}

	fmt.Fprintln(c.out, c.styles.Panel.Render(strings.TrimRight(b.String(), "\n")))
}

// Prints a step progress line.
func (c *Console) Step(name string) {
	fmt.Fprintf(c.out, "%s %s\n", c.styles.Muted.Render("==>"), c.styles.Label.Render(name))
}

// Prints the final build summary: one line per step, then the accumulated
// statistics. Rendered exactly once per run, on success, failure, and
// interruption alike.
func (c *Console) Summary(stats *pipeline.Stats, results []pipeline.StepResult) {
	c.summary(stats, results, true)
}

// Prints the setup summary. Setup never builds or deploys, so those status
// rows are omitted.
func (c *Console) SetupSummary(stats *pipeline.Stats, results []pipeline.StepResult) {
	c.summary(stats, results, false)
}

func (c *Console) summary(stats *pipeline.Stats, results []pipeline.StepResult, build bool) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Title.Render("Build Summary"))

	for _, r := range results {
		fmt.Fprintln(c.out, c.stepLine(r))
	}

	fmt.Fprintln(c.out)
	if build {
		c.statLine("Main application", c.status(stats.MainAppBuilt, "built", "not built"))
	}
	c.statLine("Plugins built", fmt.Sprintf("%d", stats.PluginsBuilt))
	if stats.PluginsFailed > 0 {
		c.statLine("Plugins missing", c.styles.Error.Render(fmt.Sprintf("%d", stats.PluginsFailed)))
	}
	if stats.PackagesInstalled > 0 {
		c.statLine("Packages installed", fmt.Sprintf("%d", stats.PackagesInstalled))
	}
	if stats.QtVersion != "" {
		c.statLine("Qt version", stats.QtVersion)
	}
	if stats.Errors > 0 || stats.Warnings > 0 {
		c.statLine("Diagnostics", fmt.Sprintf("%d errors, %d warnings", stats.Errors, stats.Warnings))
	}
	if build {
		c.statLine("Deployment", c.status(stats.DeploymentOK, "created", "not created"))
	}
	c.statLine("Duration", stats.Duration().Round(time.Second).String())
}

// Formats a boolean statistic as a styled pass or fail value.
func (c *Console) status(ok bool, yes, no string) string {
	if ok {
		return c.styles.Success.Render("✓ " + yes)
	}
	return c.styles.Error.Render("✗ " + no)
}

// Formats one summary line for a step result.
func (c *Console) stepLine(r pipeline.StepResult) string {
	switch {
	case r.Skipped:
		return fmt.Sprintf("  %s %s", c.styles.Muted.Render("-"), c.styles.Muted.Render(r.Name+" (skipped)"))
	case r.Err != nil:
		return fmt.Sprintf("  %s %s: %v", c.styles.Error.Render("✗"), r.Name, r.Err)
	default:
		return fmt.Sprintf("  %s %s %s", c.styles.Success.Render("✓"), r.Name,
			c.styles.Muted.Render("("+r.Duration.Round(time.Millisecond).String()+")"))
	}
}

func (c *Console) statLine(label, value string) {
	fmt.Fprintf(c.out, "  %s %s\n", c.styles.Label.Render(label+":"), value)
}

// Prints the closing panel: next steps on success, troubleshooting hints on
// failure.
func (c *Console) NextSteps(ok bool, deployDir, launcher, logFile string) {
	var b strings.Builder

	if ok {
		b.WriteString(c.styles.Success.Render("Build completed successfully") + "\n\n")
		b.WriteString("Next steps:\n")
		b.WriteString(fmt.Sprintf("  cd %s\n", deployDir))
		b.WriteString(fmt.Sprintf("  ./%s\n", launcher))
	} else {
		b.WriteString(c.styles.Error.Render("Build failed") + "\n\n")
		b.WriteString("Troubleshooting:\n")
		b.WriteString(fmt.Sprintf("  Check the log file: %s\n", logFile))
		b.WriteString("  Verify Qt6: qmake6 -version\n")
		b.WriteString("  Check packages: apt list --installed | grep qt6\n")
	}

	style := c.styles.Panel
	if !ok {
		style = style.BorderForeground(colorError)
	}

	fmt.Fprintln(c.out, style.Render(strings.TrimRight(b.String(), "\n")))
}

// Prints a standalone success line.
func (c *Console) OK(msg string) {
	fmt.Fprintln(c.out, c.styles.Success.Render("✓ "+msg))
}

// Prints a standalone warning line.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.styles.Warning.Render("! "+msg))
}
