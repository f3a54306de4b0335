package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WithEnv sets env var to val for the duration of the test scope.
// Returns a cleanup func to restore previous value.
func WithEnv(t *testing.T, key, val string) func() {
	t.Helper()
	old, had := os.LookupEnv(key)
	if val == "" {
		_ = os.Unsetenv(key)
	} else {
		_ = os.Setenv(key, val)
	}
	return func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	}
}

// FakeTool writes an executable shell script named name into dir.
// body runs under /bin/sh. Skips the test on Windows.
func FakeTool(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are shell scripts")
	}
	p := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(p, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake tool: %v", err)
	}
	return p
}

// PopplerScript mimics pdftoppm: the version goes to stderr and both -v and
// -h exit zero.
func PopplerScript(name, version string) string {
	return `echo "` + name + ` version ` + version + `" >&2
echo "Copyright 2005-2024 The Poppler Developers - http://poppler.freedesktop.org" >&2
exit 0`
}
