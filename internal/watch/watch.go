// Package watch re-runs a callback whenever an entry in one of the PATH
// directories changes, so a freshly installed tool is picked up without
// restarting.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"pdfdoctor/internal/system"
)

// DefaultDebounce coalesces the burst of events a package manager produces.
const DefaultDebounce = 300 * time.Millisecond

// PathDirs returns the existing, de-duplicated directories of $PATH.
func PathDirs() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range filepath.SplitList(os.Getenv("PATH")) {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		if st, err := os.Stat(d); err == nil && st.IsDir() {
			out = append(out, d)
		}
	}
	return out
}

// Run calls fn once, then again after each debounced change in dirs, until
// fn reports done or ctx ends. Directories that cannot be watched are
// skipped with a warning.
func Run(ctx context.Context, dirs []string, debounce time.Duration, fn func() (done bool)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	watched := 0
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			system.Logger.Warn("cannot watch directory", "dir", d, "err", err)
			continue
		}
		watched++
	}
	system.Logger.Debug("watching PATH", "dirs", watched)

	if fn() {
		return nil
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod|fsnotify.Write) == 0 {
				continue
			}
			system.Logger.Debug("path changed", "name", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			system.Logger.Warn("watch error", "err", err)
		case <-timer.C:
			if fn() {
				return nil
			}
		}
	}
}
