package command

import (
	"errors"
	"fmt"

	"github.com/canonical/lxd-driver/shared/resource"
)

// ErrUnsupportedAction is returned when no entry exists for a (kind, action) pair.
var ErrUnsupportedAction = errors.New("Unsupported action")

// ErrMissingParam is returned when a required parameter is absent.
var ErrMissingParam = errors.New("Missing parameter")

// ErrUnexpectedParam is returned when a parameter isn't declared by the entry.
var ErrUnexpectedParam = errors.New("Unexpected parameter")

// ErrInvalidParam is returned when a parameter value can't be used.
var ErrInvalidParam = errors.New("Invalid parameter")

// BuildError reports why a command line couldn't be built.
type BuildError struct {
	Kind   resource.Kind
	Action resource.Action
	Param  string
	Err    error
}

// Error returns the error string.
func (e *BuildError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("Failed to build %s %s: %v", e.Kind, e.Action, e.Err)
	}

	return fmt.Sprintf("Failed to build %s %s: Parameter %q: %v", e.Kind, e.Action, e.Param, e.Err)
}

// Unwrap returns the underlying error.
func (e *BuildError) Unwrap() error {
	return e.Err
}

func invalidParam(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidParam, cause)
}
