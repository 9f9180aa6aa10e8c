package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cruciblehq/kiln/internal/pipeline"
)

func TestSummaryListsEveryStep(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	stats := &pipeline.Stats{StartTime: time.Now(), PluginsBuilt: 2, PluginsFailed: 1, QtVersion: "6.4.2"}
	results := []pipeline.StepResult{
		{Name: "configure", Duration: 120 * time.Millisecond},
		{Name: "build", Err: errors.New("exit code 2")},
		{Name: "deploy", Skipped: true},
	}

	c.Summary(stats, results)
	out := buf.String()

	for _, want := range []string{"configure", "build", "deploy", "skipped", "6.4.2", "Build Summary"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryShowsBuildAndDeploymentStatus(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	stats := &pipeline.Stats{StartTime: time.Now(), MainAppBuilt: true}
	c.Summary(stats, nil)
	out := buf.String()

	if !strings.Contains(out, "Main application:") || !strings.Contains(out, "✓ built") {
		t.Fatalf("summary missing main application status:\n%s", out)
	}
	if !strings.Contains(out, "Deployment:") || !strings.Contains(out, "✗ not created") {
		t.Fatalf("summary missing deployment status:\n%s", out)
	}

	buf.Reset()
	stats.DeploymentOK = true
	c.Summary(stats, nil)
	if !strings.Contains(buf.String(), "✓ created") {
		t.Fatalf("summary missing successful deployment status:\n%s", buf.String())
	}
}

func TestSetupSummaryOmitsBuildRows(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	stats := &pipeline.Stats{StartTime: time.Now(), PackagesInstalled: 3}
	c.SetupSummary(stats, []pipeline.StepResult{{Name: "install system packages"}})
	out := buf.String()

	if strings.Contains(out, "Main application:") || strings.Contains(out, "Deployment:") {
		t.Fatalf("setup summary rendered build-only rows:\n%s", out)
	}
	if !strings.Contains(out, "Packages installed:") {
		t.Fatalf("setup summary missing package count:\n%s", out)
	}
}

func TestOKAndWarnLines(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.OK("ItemEditor executable")
	if !strings.Contains(buf.String(), "✓ ItemEditor executable") {
		t.Fatalf("OK line = %q", buf.String())
	}

	buf.Reset()
	c.Warn("missing: PluginTwo")
	if !strings.Contains(buf.String(), "! missing: PluginTwo") {
		t.Fatalf("Warn line = %q", buf.String())
	}
}

func TestHeaderSkipsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Header(HeaderInfo{Tool: "kiln (local)", Distro: "Ubuntu 24.04", Arch: "amd64"})
	out := buf.String()

	if !strings.Contains(out, "Ubuntu 24.04") {
		t.Fatalf("header missing distro:\n%s", out)
	}
	if strings.Contains(out, "Generator:") {
		t.Fatalf("header rendered empty field:\n%s", out)
	}
}

func TestNextSteps(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.NextSteps(true, "/proj/deploy_linux", "run_itemeditor.sh", "/proj/logs/x.log")
	if !strings.Contains(buf.String(), "run_itemeditor.sh") {
		t.Fatalf("success panel missing launcher:\n%s", buf.String())
	}

	buf.Reset()
	c.NextSteps(false, "", "", "/proj/logs/x.log")
	if !strings.Contains(buf.String(), "/proj/logs/x.log") {
		t.Fatalf("failure panel missing log path:\n%s", buf.String())
	}
}
