package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdfdoctor/internal/report"
	tu "pdfdoctor/internal/testutil"
)

// run executes the root command with args and an isolated config dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := runTo(t, &buf, args...)
	return buf.String(), err
}

func runTo(t *testing.T, out io.Writer, args ...string) error {
	t.Helper()
	cfgDir := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", cfgDir)()
	defer tu.WithEnv(t, "HOME", cfgDir)()

	checkJSON, checkMarkdown, checkStrict, checkTimeout = false, false, false, 0
	flagOS, flagConfig, flagVerbose = "", "", false
	guideRaw, guideAll = false, false
	configForce, installDryRun, installYes, watchForever = false, false, false, false

	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestCheck_MissingRequired(t *testing.T) {
	defer tu.WithEnv(t, "PATH", t.TempDir())()

	out, err := run(t, "check", "--os", "darwin", "pdftoppm")
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}
	if !strings.Contains(out, "brew install poppler") {
		t.Fatalf("expected macOS remediation, got:\n%s", out)
	}
	if !strings.Contains(out, "MISSING") {
		t.Fatalf("expected MISSING status, got:\n%s", out)
	}
}

func TestCheck_JSON(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "pdftoppm", tu.PopplerScript("pdftoppm", "24.02.0"))
	tu.FakeTool(t, tmp, "pdfinfo", tu.PopplerScript("pdfinfo", "24.02.0"))

	out, err := run(t, "check", "--json")
	if err != nil {
		t.Fatalf("optional tools missing should not fail: %v\n%s", err, out)
	}
	var sum report.Summary
	if err := json.Unmarshal([]byte(out), &sum); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if sum.Found != 2 || sum.RequiredMissing != 0 || sum.Missing != 3 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	_, err = run(t, "check", "--strict")
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("--strict should fail on optional tools, got %v", err)
	}
}

func TestCheck_AdHocTool(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "tesseract", `echo "tesseract 5.3.4"`)

	out, err := run(t, "check", "--markdown", "tesseract")
	if err != nil {
		t.Fatalf("ad-hoc tool should pass: %v\n%s", err, out)
	}
	if !strings.Contains(out, "`tesseract`") || !strings.Contains(out, "tesseract 5.3.4") {
		t.Fatalf("unexpected markdown:\n%s", out)
	}
}

func TestCheck_ConflictingFormats(t *testing.T) {
	if _, err := run(t, "check", "--json", "--markdown"); err == nil {
		t.Fatalf("expected conflicting format error")
	}
}

func TestCheck_InvalidOS(t *testing.T) {
	if _, err := run(t, "check", "--os", "plan9"); err == nil {
		t.Fatalf("expected invalid os error")
	}
}

func TestLs(t *testing.T) {
	out, err := run(t, "ls")
	if err != nil {
		t.Fatalf("ls error: %v", err)
	}
	for _, want := range []string{"pdftoppm", "required", "pdftotext", "optional", "probe -v, -h"} {
		if !strings.Contains(out, want) {
			t.Errorf("ls output missing %q:\n%s", want, out)
		}
	}
}

func TestGuide(t *testing.T) {
	out, err := run(t, "guide", "--os", "windows")
	if err != nil {
		t.Fatalf("guide error: %v", err)
	}
	if !strings.Contains(out, "conda install -c conda-forge poppler") || strings.Contains(out, "brew install") {
		t.Fatalf("unexpected windows guide:\n%s", out)
	}
	out, _ = run(t, "guide", "--all")
	if !strings.Contains(out, "brew install poppler") || !strings.Contains(out, "poppler-utils") {
		t.Fatalf("--all should include every OS")
	}
}

func TestInstall_DryRun(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "brew", "exit 0")

	out, err := run(t, "install", "--dry-run", "--os", "darwin")
	if err != nil {
		t.Fatalf("install --dry-run error: %v", err)
	}
	if !strings.Contains(out, "install command: brew install poppler") {
		t.Fatalf("unexpected plan output:\n%s", out)
	}
}

func TestConfigCommands(t *testing.T) {
	out, err := run(t, "config", "schema")
	if err != nil || !strings.Contains(out, `"timeout"`) {
		t.Fatalf("config schema failed: %v\n%s", err, out)
	}

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("timeout: 2s\nos: linux\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "--config", cfgPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "timeout: 2s") || !strings.Contains(out, "os: linux") {
		t.Fatalf("unexpected config show output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil || strings.TrimSpace(out) == "" {
		t.Fatalf("version failed: %v %q", err, out)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWatch_WriteError(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "pdftoppm", tu.PopplerScript("pdftoppm", "24.02.0"))
	tu.FakeTool(t, tmp, "pdfinfo", tu.PopplerScript("pdfinfo", "24.02.0"))

	err := runTo(t, brokenWriter{}, "watch")
	if err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("expected write error to end the watch, got %v", err)
	}
}

func TestWatch_StopsWhenFound(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "pdftoppm", tu.PopplerScript("pdftoppm", "24.02.0"))
	tu.FakeTool(t, tmp, "pdfinfo", tu.PopplerScript("pdfinfo", "24.02.0"))

	out, err := run(t, "watch")
	if err != nil || !strings.Contains(out, "all required tools found") {
		t.Fatalf("watch should exit once tools exist: %v\n%s", err, out)
	}
}

func TestCheck_UnknownRequiredInConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("required: [pdftopm]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "--config", cfgPath, "check")
	if err == nil || !strings.Contains(err.Error(), "pdftoppm") {
		t.Fatalf("expected unknown required tool error with suggestion, got %v", err)
	}
}

func TestCheck_Endpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	out, err := run(t, "check", "--json", srv.URL+"/v1/models")
	if err != nil {
		t.Fatalf("reachable endpoint should pass: %v\n%s", err, out)
	}
	var sum report.Summary
	if err := json.Unmarshal([]byte(out), &sum); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(sum.Results) != 1 || !sum.Results[0].Found || sum.Results[0].VersionInfo != "HTTP 200 OK" {
		t.Fatalf("unexpected endpoint result: %+v", sum.Results)
	}
}
