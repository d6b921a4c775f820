//go:build unix

package subprocess

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sys/unix"

	"github.com/canonical/lxd-driver/shared/command"
)

type executorSuite struct {
	suite.Suite

	executor *Executor
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(executorSuite))
}

func (s *executorSuite) SetupTest() {
	s.executor = NewExecutor(WithBinaryPath(command.BinaryLXC, "/bin/sh"), WithKillGrace(200*time.Millisecond))
}

func shell(script string) command.Spec {
	return command.NewSpec(command.BinaryLXC, "-c", script)
}

// readPid waits for the child to report its pid.
func (s *executorSuite) readPid(path string) int {
	var content []byte
	s.Require().Eventually(func() bool {
		var err error
		content, err = os.ReadFile(path)
		return err == nil && strings.HasSuffix(string(content), "\n")
	}, 5*time.Second, 10*time.Millisecond)

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	s.Require().NoError(err)

	return pid
}

func (s *executorSuite) assertGone(pid int) {
	err := unix.Kill(pid, 0)
	s.ErrorIs(err, unix.ESRCH, "Process %d is still around", pid)
}

// assertReaped waits for a process which isn't our child to be killed and reaped by whoever adopted it.
func (s *executorSuite) assertReaped(pid int) {
	s.Eventually(func() bool {
		err := unix.Kill(pid, 0)
		if errors.Is(err, unix.ESRCH) {
			return true
		}

		// A zombie waiting for its new parent is gone too.
		stat, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
		if err != nil {
			return true
		}

		i := strings.LastIndex(string(stat), ")")
		return i >= 0 && strings.HasPrefix(string(stat[i+1:]), " Z")
	}, 5*time.Second, 10*time.Millisecond, "Process %d is still around", pid)
}

func (s *executorSuite) TestSuccess() {
	outcome, err := s.executor.Execute(context.Background(), shell("echo hello; echo oops >&2"), time.Minute)
	s.Require().NoError(err)
	s.Equal(0, outcome.ExitCode)
	s.Equal("hello\n", string(outcome.Stdout))
	s.Equal("oops\n", string(outcome.Stderr))
}

func (s *executorSuite) TestSpawnFailed() {
	e := NewExecutor(WithBinaryPath(command.BinaryLXC, filepath.Join(s.T().TempDir(), "missing")))

	outcome, err := e.Execute(context.Background(), command.NewSpec(command.BinaryLXC, "list"), time.Second)
	s.Nil(outcome)
	s.ErrorIs(err, ErrSpawnFailed)
	s.True(Retryable(err))

	var runErr *RunError
	s.Require().True(errors.As(err, &runErr))
	s.Equal([]string{"list"}, runErr.Args)
}

func (s *executorSuite) TestNonZeroExit() {
	outcome, err := s.executor.Execute(context.Background(), shell("echo partial; echo 'Error: Instance not found' >&2; exit 3"), time.Minute)
	s.ErrorIs(err, ErrNonZeroExit)
	s.False(Retryable(err))
	s.Require().NotNil(outcome)
	s.Equal(3, outcome.ExitCode)

	var runErr *RunError
	s.Require().True(errors.As(err, &runErr))
	s.Equal(3, runErr.ExitCode)
	s.Equal("partial\n", string(runErr.Stdout))
	s.Equal("Error: Instance not found\n", string(runErr.Stderr))
	s.Contains(err.Error(), "Instance not found")
	s.Contains(err.Error(), "exited with code 3")
}

func (s *executorSuite) TestTimeoutTerminatesChild() {
	pidFile := filepath.Join(s.T().TempDir(), "pid")

	start := time.Now()
	_, err := s.executor.Execute(context.Background(), shell("echo $$ > "+pidFile+"; exec sleep 30"), 300*time.Millisecond)
	s.ErrorIs(err, ErrTimedOut)
	s.True(Retryable(err))
	s.Less(time.Since(start), 10*time.Second)

	s.assertGone(s.readPid(pidFile))
}

func (s *executorSuite) TestExitKillsLeftoverProcesses() {
	e := NewExecutor(WithBinaryPath(command.BinaryLXC, "/bin/sh"), WithKillGrace(5*time.Second))
	pidFile := filepath.Join(s.T().TempDir(), "pid")

	start := time.Now()
	outcome, err := e.Execute(context.Background(), shell("sleep 30 & echo $! > "+pidFile+"; echo done"), 0)
	s.Require().NoError(err)
	s.Equal("done\n", string(outcome.Stdout))
	s.Less(time.Since(start), 2*time.Second)

	s.assertReaped(s.readPid(pidFile))
}

func (s *executorSuite) TestExitBeforeTimeoutWithLeftoverProcesses() {
	e := NewExecutor(WithBinaryPath(command.BinaryLXC, "/bin/sh"), WithKillGrace(5*time.Second))

	outcome, err := e.Execute(context.Background(), shell("sleep 30 & echo done"), 300*time.Millisecond)
	s.Require().NoError(err)
	s.Equal(0, outcome.ExitCode)
	s.Equal("done\n", string(outcome.Stdout))
}

func (s *executorSuite) TestTimeoutKillsStubbornChild() {
	pidFile := filepath.Join(s.T().TempDir(), "pid")

	_, err := s.executor.Execute(context.Background(), shell("trap '' TERM; echo $$ > "+pidFile+"; while true; do sleep 1; done"), 300*time.Millisecond)
	s.ErrorIs(err, ErrTimedOut)

	s.assertGone(s.readPid(pidFile))
}

func (s *executorSuite) TestCancel() {
	pidFile := filepath.Join(s.T().TempDir(), "pid")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		s.readPid(pidFile)
		cancel()
	}()

	_, err := s.executor.Execute(ctx, shell("echo $$ > "+pidFile+"; exec sleep 30"), 0)
	s.ErrorIs(err, ErrCancelled)
	s.ErrorIs(err, context.Canceled)
	s.False(Retryable(err))

	s.assertGone(s.readPid(pidFile))
}

func (s *executorSuite) TestAlreadyCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := s.executor.Execute(ctx, shell("exit 0"), time.Second)
	s.Nil(outcome)
	s.ErrorIs(err, ErrCancelled)
}

func (s *executorSuite) TestOutputCapturedOnTimeout() {
	_, err := s.executor.Execute(context.Background(), shell("echo started; exec sleep 30"), 300*time.Millisecond)

	var runErr *RunError
	s.Require().True(errors.As(err, &runErr))
	s.Equal("started\n", string(runErr.Stdout))
}

func (s *executorSuite) TestConcurrentExecutions() {
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			outcome, err := s.executor.Execute(context.Background(), shell("echo "+strconv.Itoa(i)), time.Minute)
			if err == nil && strings.TrimSpace(string(outcome.Stdout)) != strconv.Itoa(i) {
				err = errors.New("Unexpected output")
			}

			errs <- err
		}(i)
	}

	for i := 0; i < 8; i++ {
		s.NoError(<-errs)
	}
}
