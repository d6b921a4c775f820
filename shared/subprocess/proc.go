package subprocess

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// process is a single run of an external binary with captured output.
type process struct {
	name string
	args []string
	env  []string

	stdout bytes.Buffer
	stderr bytes.Buffer

	pid      int
	chExit   chan struct{}
	exitCode int
	exitErr  error

	pipes    []*os.File
	chOutput chan struct{}
}

// start spawns the process in its own session and monitors it until it exits.
// chExit is closed once the direct child is reaped, chOutput once both output pipes are drained.
func (p *process) start() error {
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return err
	}

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		_ = stdoutR.Close()
		_ = stdoutW.Close()
		return err
	}

	cmd := exec.Command(p.name, p.args...)
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	cmd.Env = p.env
	cmd.SysProcAttr = sysProcAttr()

	err = cmd.Start()

	// Only the child and its descendants keep the write ends.
	_ = stdoutW.Close()
	_ = stderrW.Close()

	if err != nil {
		_ = stdoutR.Close()
		_ = stderrR.Close()
		return err
	}

	p.pid = cmd.Process.Pid
	p.pipes = []*os.File{stdoutR, stderrR}

	wg := sync.WaitGroup{}
	for i, w := range []io.Writer{&p.stdout, &p.stderr} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = io.Copy(w, p.pipes[i])
		}()
	}

	p.chOutput = make(chan struct{})
	go func() {
		wg.Wait()
		close(p.chOutput)
	}()

	// Spawn a goroutine waiting for the child itself to exit.
	p.chExit = make(chan struct{})
	go func() {
		defer close(p.chExit)

		state, err := cmd.Process.Wait()
		if err != nil {
			p.exitCode = -1
			p.exitErr = fmt.Errorf("Failed to wait for process: %w", err)
			return
		}

		p.exitCode = state.ExitCode()
	}()

	return nil
}

// stop signals the whole session, escalating to a kill after grace, and waits until the child is reaped.
func (p *process) stop(grace time.Duration) {
	_ = interruptGroup(p.pid)

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-p.chExit:
		return
	case <-timer.C:
	}

	_ = killGroup(p.pid)
	<-p.chExit
}

// finish kills whatever is left of the session once the child was reaped and collects the output.
// Pipes still held after waitDelay, by a process which left the session, are closed.
func (p *process) finish(waitDelay time.Duration) {
	_ = sweepGroup(p.pid)

	timer := time.NewTimer(waitDelay)
	defer timer.Stop()

	select {
	case <-p.chOutput:
	case <-timer.C:
		for _, f := range p.pipes {
			_ = f.Close()
		}

		<-p.chOutput
	}

	for _, f := range p.pipes {
		_ = f.Close()
	}
}
