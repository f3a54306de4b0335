package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tu "pdfdoctor/internal/testutil"
)

func TestPathDirs(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	missing := filepath.Join(a, "nope")
	defer tu.WithEnv(t, "PATH", a+string(os.PathListSeparator)+missing+string(os.PathListSeparator)+b+string(os.PathListSeparator)+a)()

	got := PathDirs()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected dirs: %v", got)
	}
}

func TestRun_StopsWhenToolAppears(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "pdftoppm")
	calls := 0
	fn := func() bool {
		calls++
		_, err := os.Stat(target)
		return err == nil
	}

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = os.WriteFile(target, []byte("#!/bin/sh\n"), 0o755)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Run(ctx, []string{dir}, 50*time.Millisecond, fn); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if calls < 2 {
		t.Fatalf("expected an initial call and a re-check, got %d", calls)
	}
}

func TestRun_ImmediateDone(t *testing.T) {
	calls := 0
	err := Run(context.Background(), []string{t.TempDir()}, 0, func() bool {
		calls++
		return true
	})
	if err != nil || calls != 1 {
		t.Fatalf("expected single call and nil error, got %d / %v", calls, err)
	}
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	err := Run(ctx, []string{t.TempDir(), filepath.Join(t.TempDir(), "missing")}, 0, func() bool { return false })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}
