//go:build unix

package subprocess

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

// interruptGroup sends SIGTERM to the session started for pid.
func interruptGroup(pid int) error {
	return unix.Kill(-pid, unix.SIGTERM)
}

// killGroup sends SIGKILL to the session started for pid.
func killGroup(pid int) error {
	return unix.Kill(-pid, unix.SIGKILL)
}

// sweepGroup kills what is left of the session of an exited pid. ESRCH means nothing was left.
func sweepGroup(pid int) error {
	return killGroup(pid)
}
