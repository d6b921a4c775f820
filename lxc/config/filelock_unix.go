//go:build unix

package config

import (
	"errors"
	"os"
	"slices"

	"golang.org/x/sys/unix"
)

// flock calls the flock syscall: https://man7.org/linux/man-pages/man2/flock.2.html
// It does not call flock again if an EINTR is returned. This allows the caller to cancel the call via Ctrl+C.
func flock(f *os.File, op int) error {
	// Don't allow non-blocking or invalid operations.
	if !slices.Contains([]int{unix.LOCK_EX, unix.LOCK_SH, unix.LOCK_UN}, op) {
		return errors.New("Operation not supported")
	}

	return unix.Flock(int(f.Fd()), op)
}

// lockFile calls flock with [unix.LOCK_EX].
func lockFile(f *os.File) error {
	return flock(f, unix.LOCK_EX)
}

// unlockFile calls flock with [unix.LOCK_UN].
func unlockFile(f *os.File) error {
	return flock(f, unix.LOCK_UN)
}
