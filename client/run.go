package client

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/logger"
	"github.com/canonical/lxd-driver/shared/resource"
	"github.com/canonical/lxd-driver/shared/subprocess"
)

// Result is the outcome of a successful operation.
type Result struct {
	Spec    command.Spec
	Outcome *subprocess.Outcome
	Decoded *Decoded
}

// Build renders the command line of an operation without running it.
// Unqualified addresses are placed in the default remote and every remote must be configured.
func (c *Client) Build(kind resource.Kind, action resource.Action, params command.Params) (command.Spec, error) {
	spec, _, err := c.build(kind, action, params)
	return spec, err
}

func (c *Client) build(kind resource.Kind, action resource.Action, params command.Params) (command.Spec, command.Entry, error) {
	entry, ok := c.registry.Lookup(kind, action)
	if !ok {
		return command.Spec{}, command.Entry{}, &OperationError{Kind: kind, Action: action, Err: &command.BuildError{Kind: kind, Action: action, Err: command.ErrUnsupportedAction}}
	}

	spec, err := entry.Build(params, command.WithDefaultRemote(c.DefaultRemote()), command.WithRemoteValidator(c.validateRemote))
	if err != nil {
		return command.Spec{}, command.Entry{}, &OperationError{Kind: kind, Action: action, Err: err}
	}

	return spec, entry, nil
}

// Run builds, executes and decodes an operation.
func (c *Client) Run(ctx context.Context, kind resource.Kind, action resource.Action, params command.Params) (*Result, error) {
	spec, entry, err := c.build(kind, action, params)
	if err != nil {
		return nil, err
	}

	l := c.log().AddContext(logger.Ctx{"request": uuid.NewString(), "kind": kind, "action": action})
	l.Debug("Running operation", logger.Ctx{"binary": spec.Binary(), "args": spec.Args(), "timeout": c.timeout})

	outcome, err := c.runner.Execute(ctx, spec, c.timeout)
	if err != nil {
		return nil, &OperationError{Kind: kind, Action: action, Command: spec.String(), Err: err}
	}

	decoded, err := Decode(entry, outcome)
	if err != nil {
		l.Warn("Unexpected command output", logger.Ctx{"err": err})
		return nil, &OperationError{Kind: kind, Action: action, Command: spec.String(), Err: err}
	}

	if kind == resource.KindRemote {
		err = c.applyRemoteChange(action, params)
		if err != nil {
			l.Warn("Failed to record remote change", logger.Ctx{"err": err})
		}
	}

	l.Debug("Operation succeeded", logger.Ctx{"duration": outcome.Duration})

	return &Result{Spec: spec, Outcome: outcome, Decoded: decoded}, nil
}

// Query runs an operation, asking list commands for JSON output so the result is typed.
func (c *Client) Query(ctx context.Context, kind resource.Kind, action resource.Action, params command.Params) (*Result, error) {
	entry, ok := c.registry.Lookup(kind, action)
	if ok {
		_, hasFormat := entry.Param("format")
		if hasFormat {
			params = maps.Clone(params)
			if params == nil {
				params = command.Params{}
			}

			params["format"] = "json"
		}
	}

	return c.Run(ctx, kind, action, params)
}
