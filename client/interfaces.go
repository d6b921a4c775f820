package client

import (
	"context"
	"time"

	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/subprocess"
)

// Runner executes a command spec. It is implemented by *subprocess.Executor.
type Runner interface {
	Execute(ctx context.Context, spec command.Spec, timeout time.Duration) (*subprocess.Outcome, error)
}

// InstanceArgs holds the optional settings of a new instance.
type InstanceArgs struct {
	Profile   string
	Ephemeral bool
}
