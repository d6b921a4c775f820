//go:build !unix

package subprocess

import (
	"os"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// Process groups aren't available here, only the direct child is stopped.
func interruptGroup(pid int) error {
	return killGroup(pid)
}

func killGroup(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}

	return p.Kill()
}

func sweepGroup(pid int) error {
	return nil
}
