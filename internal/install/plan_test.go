package install

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"pdfdoctor/internal/deps"
	tu "pdfdoctor/internal/testutil"
)

func TestCandidates(t *testing.T) {
	cases := []struct {
		goos, distro string
		first        string
		n            int
	}{
		{"darwin", "", "brew install poppler", 2},
		{"windows", "", "conda install -y -c conda-forge poppler", 3},
		{"linux", deps.DistroDebian, "sudo apt-get install -y poppler-utils", 1},
		{"linux", deps.DistroArch, "sudo pacman -S --noconfirm poppler", 1},
		{"linux", "", "sudo apt-get install -y poppler-utils", 5},
	}
	for _, tc := range cases {
		got := Candidates(tc.goos, tc.distro)
		if len(got) != tc.n {
			t.Errorf("%s/%s: expected %d candidates, got %d", tc.goos, tc.distro, tc.n, len(got))
			continue
		}
		if got[0].String() != tc.first {
			t.Errorf("%s/%s: first = %q, want %q", tc.goos, tc.distro, got[0].String(), tc.first)
		}
	}
	if Candidates("plan9", "") != nil {
		t.Errorf("unknown OS should have no candidates")
	}
}

func TestPlan(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()

	if _, err := Plan("darwin", ""); !errors.Is(err, ErrNoPackageManager) {
		t.Fatalf("expected ErrNoPackageManager, got %v", err)
	}

	tu.FakeTool(t, tmp, "port", "exit 0")
	s, err := Plan("darwin", "")
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	// no sudo on the fake PATH, so it is dropped
	if s.String() != "port install poppler" {
		t.Fatalf("unexpected plan %q", s.String())
	}
}

func TestRun(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "PATH", tmp)()
	tu.FakeTool(t, tmp, "brew", `echo "==> Installing poppler $2"`)
	tu.FakeTool(t, tmp, "broken", `exit 2`)

	var out bytes.Buffer
	if err := Run(context.Background(), Step{Manager: "brew", Args: []string{"brew", "install", "poppler"}}, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.Contains(out.String(), "Installing poppler poppler") {
		t.Fatalf("installer output not streamed: %q", out.String())
	}
	if err := Run(context.Background(), Step{Manager: "broken", Args: []string{"broken"}}, &out); err == nil {
		t.Fatalf("expected failing installer to return an error")
	}
	if err := Run(context.Background(), Step{}, &out); err == nil {
		t.Fatalf("expected empty step to fail")
	}
}
