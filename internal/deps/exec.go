package deps

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	xansi "github.com/charmbracelet/x/ansi"
)

// runCmd executes a command and returns its combined output with ANSI escapes
// stripped, plus the exit code. A deadline hit is reported as ErrTimeout.
func runCmd(ctx context.Context, name string, args ...string) (string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid opening pager or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1", "LC_ALL=C")
	// children that inherited the pipes must not keep Wait blocked past the deadline
	cmd.WaitDelay = 500 * time.Millisecond
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", -1, ErrTimeout
	}
	s := xansi.Strip(string(out))
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return s, ee.ExitCode(), err
		}
		return s, -1, err
	}
	return s, 0, nil
}
