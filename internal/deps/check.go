package deps

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"pdfdoctor/internal/system"
)

// Check verifies that command is on PATH and answers a harmless probe
// (-v, then -h) with a zero exit status. Failures are reported in the result,
// never returned.
func Check(ctx context.Context, command string, opts Options) CheckResult {
	return CheckTool(ctx, AdHoc(command), opts)
}

// CheckTool is the registry-aware variant of Check: every candidate binary is
// resolved in order, then each probe is tried until one succeeds. The whole
// check shares a single deadline of opts.Timeout.
func CheckTool(ctx context.Context, t ToolInfo, opts Options) CheckResult {
	start := time.Now()
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if t.URL != "" {
		return checkEndpoint(ctx, t, opts, goos)
	}
	res := CheckResult{ToolName: string(t.ID), OS: goos}
	if len(t.Binaries) == 0 {
		t.Binaries = []string{string(t.ID)}
	}
	if len(t.VersionArgs) == 0 {
		t.VersionArgs = defaultProbes
	}

	fail := func(err error) CheckResult {
		res.Found = false
		res.Err = err
		res.RemediationHint = Remediation(goos, distroFor(goos, opts), t.Binaries[0])
		res.Duration = time.Since(start)
		system.Logger.Debug("dependency missing", "tool", res.ToolName, "err", err)
		return res
	}

	for _, bin := range t.Binaries {
		if p, err := exec.LookPath(bin); err == nil {
			res.Path = p
			break
		}
	}
	if res.Path == "" {
		return fail(ErrExecutableNotFound)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lastErr error
	ranOK := false
	for _, args := range t.VersionArgs {
		out, code, err := runCmd(cctx, res.Path, args...)
		system.Logger.Debug("probe", "tool", res.ToolName, "args", strings.Join(args, " "), "exit", code)
		if err != nil {
			if cerr := ctx.Err(); cerr != nil {
				return fail(cerr)
			}
			// an earlier probe already exited zero
			if ranOK {
				break
			}
			if errors.Is(err, ErrTimeout) {
				return fail(ErrTimeout)
			}
			lastErr = probeFailure(out, code, err)
			continue
		}
		ranOK = true
		if line := firstLine(out); line != "" {
			res.VersionInfo = line
			res.Version = ParseVersion(out)
			res.Source = strings.TrimSpace(fmt.Sprintf("%s %s", t.Binaries[0], strings.Join(args, " ")))
			break
		}
	}
	if !ranOK {
		return fail(lastErr)
	}

	res.Found = true
	if res.Source == "" {
		// exited cleanly without output; still usable
		res.Source = t.Binaries[0]
	}
	if t.MinVersion != "" && res.Version != "" && VersionLess(res.Version, t.MinVersion) {
		res.Err = fmt.Errorf("%w: have %s, need %s", ErrVersionTooOld, res.Version, t.MinVersion)
		res.RemediationHint = fmt.Sprintf("%s %s is older than %s. Upgrade poppler:\n  %s",
			t.Binaries[0], res.Version, t.MinVersion, upgradeLine(goos, distroFor(goos, opts)))
	}
	res.Duration = time.Since(start)
	return res
}

// CheckAll runs CheckTool for each tool sequentially.
func CheckAll(ctx context.Context, list []ToolInfo, opts Options) []CheckResult {
	out := make([]CheckResult, 0, len(list))
	for _, t := range list {
		out = append(out, CheckTool(ctx, t, opts))
	}
	return out
}

// probeFailure classifies a probe that did not exit zero. Signals and start
// errors carry exit code -1.
func probeFailure(out string, code int, err error) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExecutableFailedError{ExitCode: code, Output: firstLine(out), Cause: err}
	}
	return &ExecutableFailedError{ExitCode: -1, Output: err.Error(), Cause: err}
}

func distroFor(goos string, opts Options) string {
	if opts.Distro != "" || goos != "linux" || runtime.GOOS != "linux" {
		return opts.Distro
	}
	return DetectDistro()
}

func upgradeLine(goos, distro string) string {
	switch goos {
	case "darwin":
		return "brew upgrade poppler"
	case "windows":
		return "conda update -c conda-forge poppler"
	case "linux":
		return linuxInstall(distro)
	}
	return "upgrade poppler with your system package manager"
}

func firstLine(s string) string {
	for _, ln := range strings.Split(s, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			return ln
		}
	}
	return ""
}
