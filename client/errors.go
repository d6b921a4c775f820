package client

import (
	"fmt"

	"github.com/canonical/lxd-driver/shared/resource"
)

// OperationError is returned by Run when an operation couldn't be built, executed or decoded.
type OperationError struct {
	Kind    resource.Kind
	Action  resource.Action
	Command string
	Err     error
}

// Error returns the error string.
func (e *OperationError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("Failed to %s %s: %v", e.Action, e.Kind, e.Err)
	}

	return fmt.Sprintf("Failed to %s %s (%s): %v", e.Action, e.Kind, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}
