package client

import (
	"context"
	"fmt"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Instance handling functions

// queryValue runs an operation and asserts the type of its decoded value.
func queryValue[T any](ctx context.Context, c *Client, kind resource.Kind, action resource.Action, params command.Params) (T, error) {
	var zero T

	res, err := c.Query(ctx, kind, action, params)
	if err != nil {
		return zero, err
	}

	value, ok := res.Decoded.Value.(T)
	if !ok {
		err := &DecodeError{Kind: kind, Action: action, Err: fmt.Errorf("Expected %T, got %T", zero, res.Decoded.Value)}
		return zero, &OperationError{Kind: kind, Action: action, Command: res.Spec.String(), Err: err}
	}

	return value, nil
}

// scopeParams returns the parameters of a listing of remote, the default remote when empty.
func (c *Client) scopeParams(remote string) command.Params {
	if remote == "" {
		remote = c.DefaultRemote()
	}

	return command.Params{"scope": remote}
}

// GetInstances returns the instances of a remote.
func (c *Client) GetInstances(ctx context.Context, remote string) ([]api.Instance, error) {
	return queryValue[[]api.Instance](ctx, c, resource.KindContainer, resource.ActionList, c.scopeParams(remote))
}

// GetInstance returns the configuration of an instance.
func (c *Client) GetInstance(ctx context.Context, name string) (*api.Instance, error) {
	instance, err := queryValue[api.Instance](ctx, c, resource.KindContainer, resource.ActionShow, command.Params{"instance": name})
	if err != nil {
		return nil, err
	}

	return &instance, nil
}

// CreateInstance launches a new instance from an image. Unqualified images come from the images remote.
func (c *Client) CreateInstance(ctx context.Context, image string, name string, args InstanceArgs) error {
	params := command.Params{
		"image":     image,
		"instance":  name,
		"ephemeral": args.Ephemeral,
	}

	if args.Profile != "" {
		params["profile"] = args.Profile
	}

	_, err := c.Run(ctx, resource.KindContainer, resource.ActionLaunch, params)
	return err
}

// UpdateInstanceState starts, stops or restarts an instance.
func (c *Client) UpdateInstanceState(ctx context.Context, name string, action resource.Action, force bool) error {
	params := command.Params{"instance": name}

	switch action {
	case resource.ActionStart, resource.ActionRestart:
	case resource.ActionStop:
		params["force"] = force
	default:
		return fmt.Errorf("Invalid instance state action %q", action)
	}

	_, err := c.Run(ctx, resource.KindContainer, action, params)
	return err
}

// DeleteInstance deletes an instance, stopping it first when force is set.
func (c *Client) DeleteInstance(ctx context.Context, name string, force bool) error {
	_, err := c.Run(ctx, resource.KindContainer, resource.ActionDelete, command.Params{"instance": name, "force": force})
	return err
}

// RenameInstance renames an instance. An unqualified new name stays on the remote of the instance.
func (c *Client) RenameInstance(ctx context.Context, name string, newName string) error {
	_, err := c.Run(ctx, resource.KindContainer, resource.ActionRename, command.Params{"old": name, "new": newName})
	return err
}

// CreateInstanceSnapshot snapshots an instance.
func (c *Client) CreateInstanceSnapshot(ctx context.Context, name string, snapshot string, stateful bool) error {
	_, err := c.Run(ctx, resource.KindSnapshot, resource.ActionCreate, command.Params{"instance": name, "name": snapshot, "stateful": stateful})
	return err
}
