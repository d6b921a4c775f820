package subprocess

import (
	"context"
	"fmt"
	"time"

	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/logger"
)

// DefaultKillGrace is how long a stopped process is given to exit after SIGTERM before it is killed.
const DefaultKillGrace = 5 * time.Second

// Outcome is the result of a process that ran to completion.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Executor runs command specs as child processes.
type Executor struct {
	paths     map[command.Binary]string
	killGrace time.Duration
	env       []string
	logger    logger.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithBinaryPath runs path whenever a spec asks for binary.
func WithBinaryPath(binary command.Binary, path string) Option {
	return func(e *Executor) {
		if path != "" {
			e.paths[binary] = path
		}
	}
}

// WithKillGrace sets the delay between SIGTERM and SIGKILL when stopping a process.
func WithKillGrace(grace time.Duration) Option {
	return func(e *Executor) {
		if grace > 0 {
			e.killGrace = grace
		}
	}
}

// WithEnv sets the environment of the child processes. By default they inherit ours.
func WithEnv(env []string) Option {
	return func(e *Executor) {
		e.env = env
	}
}

// WithLogger sets the logger used to report executions.
func WithLogger(l logger.Logger) Option {
	return func(e *Executor) {
		e.logger = l
	}
}

// NewExecutor returns an Executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		paths:     map[command.Binary]string{},
		killGrace: DefaultKillGrace,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Executor) log() logger.Logger {
	if e.logger != nil {
		return e.logger
	}

	return logger.Log
}

func (e *Executor) path(binary command.Binary) string {
	path, ok := e.paths[binary]
	if ok {
		return path
	}

	return string(binary)
}

// Execute runs spec and blocks until it exits, times out or ctx is done.
//
// A timeout of zero or less disables the timeout. On timeout or cancellation the process group is sent SIGTERM,
// then SIGKILL after the kill grace period. The process is always reaped before Execute returns, and whatever it
// left running in its session is killed.
// Any failure is a *RunError carrying the captured output.
func (e *Executor) Execute(ctx context.Context, spec command.Spec, timeout time.Duration) (*Outcome, error) {
	p := &process{
		name: e.path(spec.Binary()),
		args: spec.Args(),
		env:  e.env,
	}

	l := e.log().AddContext(logger.Ctx{"binary": p.name, "args": p.args})

	fail := func(reason error, err error, outcome *Outcome) (*Outcome, error) {
		runErr := &RunError{
			Reason:   reason,
			Binary:   p.name,
			Args:     p.args,
			Err:      err,
			ExitCode: -1,
		}

		if outcome != nil {
			runErr.ExitCode = outcome.ExitCode
			runErr.Stdout = outcome.Stdout
			runErr.Stderr = outcome.Stderr
		}

		l.Warn("Command failed", logger.Ctx{"err": runErr.Error()})

		return outcome, runErr
	}

	// Don't spawn anything for an already cancelled context.
	err := ctx.Err()
	if err != nil {
		return fail(ErrCancelled, err, nil)
	}

	start := time.Now()
	l.Debug("Running command", logger.Ctx{"timeout": timeout})

	err = p.start()
	if err != nil {
		return fail(ErrSpawnFailed, err, nil)
	}

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	var reason error
	var cause error

	select {
	case <-p.chExit:
	case <-timer:
		reason = ErrTimedOut
		cause = fmt.Errorf("Exceeded timeout of %s", timeout)
	case <-ctx.Done():
		reason = ErrCancelled
		cause = ctx.Err()
	}

	if reason != nil {
		p.stop(e.killGrace)
	}

	p.finish(e.killGrace)

	outcome := &Outcome{
		ExitCode: p.exitCode,
		Stdout:   p.stdout.Bytes(),
		Stderr:   p.stderr.Bytes(),
		Duration: time.Since(start),
	}

	if reason != nil {
		return fail(reason, cause, outcome)
	}

	if p.exitErr != nil {
		return fail(ErrSpawnFailed, p.exitErr, outcome)
	}

	if outcome.ExitCode != 0 {
		return fail(ErrNonZeroExit, nil, outcome)
	}

	l.Debug("Command succeeded", logger.Ctx{"duration": outcome.Duration})

	return outcome, nil
}
