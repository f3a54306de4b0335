package deps

import (
	"errors"
	"fmt"
)

// Failure kinds stored in CheckResult.Err. None of them is fatal; the caller
// decides whether to abort.
var (
	ErrExecutableNotFound = errors.New("executable not found on PATH")
	ErrTimeout            = errors.New("probe timed out")
	ErrVersionTooOld      = errors.New("installed version is older than required")
	ErrUnreachable        = errors.New("endpoint not reachable")
)

// ExecutableFailedError reports that no probe ran successfully: every probe
// exited non-zero, was killed by a signal, or could not be started.
// ExitCode is -1 for the last two, with Cause holding the reason.
type ExecutableFailedError struct {
	ExitCode int
	Output   string
	Cause    error
}

func (e *ExecutableFailedError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("executable failed with exit code %d", e.ExitCode)
	}
	if e.Cause != nil {
		return "executable failed: " + e.Cause.Error()
	}
	return "executable failed"
}

func (e *ExecutableFailedError) Unwrap() error { return e.Cause }

// EndpointStatusError reports a non-2xx answer from an HTTP endpoint.
type EndpointStatusError struct {
	StatusCode int
	Status     string
}

func (e *EndpointStatusError) Error() string {
	return "endpoint answered " + e.Status
}

// Kind names the failure for reports: "not_found", "failed", "timeout",
// "outdated", "unreachable" or "" when there is none. "error" is left for
// caller cancellation.
func Kind(err error) string {
	var fe *ExecutableFailedError
	var se *EndpointStatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrExecutableNotFound):
		return "not_found"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrVersionTooOld):
		return "outdated"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	case errors.As(err, &fe), errors.As(err, &se):
		return "failed"
	default:
		return "error"
	}
}
