package subprocess

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *RunError
		expected string
	}{
		{
			name:     "non-zero exit with stderr",
			err:      &RunError{Reason: ErrNonZeroExit, Binary: "lxc", Args: []string{"delete", "local:c1"}, ExitCode: 1, Stderr: []byte("Error: Not Found\n")},
			expected: `Command "lxc delete local:c1" exited with code 1: Error: Not Found`,
		},
		{
			name:     "non-zero exit without stderr",
			err:      &RunError{Reason: ErrNonZeroExit, Binary: "lxc", Args: []string{"list"}, ExitCode: 2},
			expected: `Command "lxc list" exited with code 2`,
		},
		{
			name:     "timeout",
			err:      &RunError{Reason: ErrTimedOut, Binary: "lxd", Args: []string{"init"}, Err: fmt.Errorf("Exceeded timeout of 1s")},
			expected: `Process timed out: "lxd init": Exceeded timeout of 1s`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestRunErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(&RunError{Reason: ErrSpawnFailed, Binary: "lxc", Err: cause})

	assert.ErrorIs(t, err, ErrSpawnFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNonZeroExit)
	assert.True(t, Retryable(fmt.Errorf("Wrapped: %w", err)))
}
