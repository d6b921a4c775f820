package subprocess

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrSpawnFailed is returned when the binary couldn't be started.
var ErrSpawnFailed = errors.New("Failed to start process")

// ErrNonZeroExit is returned when the process exited with a non-zero status.
var ErrNonZeroExit = errors.New("Process exited with non-zero value")

// ErrTimedOut is returned when the process was stopped after exceeding its timeout.
var ErrTimedOut = errors.New("Process timed out")

// ErrCancelled is returned when the process was stopped because its context ended.
var ErrCancelled = errors.New("Process cancelled")

// RunError is returned by Execute for every failure. Captured output is always attached.
type RunError struct {
	Reason   error
	Binary   string
	Args     []string
	Err      error
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Command returns the failed command line quoted for a POSIX shell.
func (e *RunError) Command() string {
	return shellquote.Join(append([]string{e.Binary}, e.Args...)...)
}

// Error returns the error string.
func (e *RunError) Error() string {
	stderr := strings.TrimSpace(string(e.Stderr))

	if errors.Is(e.Reason, ErrNonZeroExit) {
		if stderr == "" {
			return fmt.Sprintf("Command %q exited with code %d", e.Command(), e.ExitCode)
		}

		return fmt.Sprintf("Command %q exited with code %d: %s", e.Command(), e.ExitCode, stderr)
	}

	msg := fmt.Sprintf("%v: %q", e.Reason, e.Command())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	if stderr != "" {
		msg += " (" + stderr + ")"
	}

	return msg
}

// Unwrap returns the failure reason and, when known, the underlying cause.
func (e *RunError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Reason}
	}

	return []error{e.Reason, e.Err}
}

// Retryable reports whether err may succeed when run again. Non-zero exits are semantic rejections and aren't retryable.
func Retryable(err error) bool {
	return errors.Is(err, ErrTimedOut) || errors.Is(err, ErrSpawnFailed)
}
