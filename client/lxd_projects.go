package client

import (
	"context"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Project and profile handling functions

// GetProjects returns the projects of a remote.
func (c *Client) GetProjects(ctx context.Context, remote string) ([]api.Project, error) {
	return queryValue[[]api.Project](ctx, c, resource.KindProject, resource.ActionList, c.scopeParams(remote))
}

// GetProfiles returns the profiles of a remote.
func (c *Client) GetProfiles(ctx context.Context, remote string) ([]api.Profile, error) {
	return queryValue[[]api.Profile](ctx, c, resource.KindProfile, resource.ActionList, c.scopeParams(remote))
}

// GetOperations returns the background operations of a remote.
func (c *Client) GetOperations(ctx context.Context, remote string) ([]api.Operation, error) {
	return queryValue[[]api.Operation](ctx, c, resource.KindOperation, resource.ActionList, c.scopeParams(remote))
}
