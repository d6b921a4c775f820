package client

import (
	"context"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Image handling functions

// GetImages returns the images of a remote.
func (c *Client) GetImages(ctx context.Context, remote string) ([]api.Image, error) {
	return queryValue[[]api.Image](ctx, c, resource.KindImage, resource.ActionList, c.scopeParams(remote))
}

// GetImageAliases returns the image aliases of a remote.
func (c *Client) GetImageAliases(ctx context.Context, remote string) ([]api.ImageAliasesEntry, error) {
	return queryValue[[]api.ImageAliasesEntry](ctx, c, resource.KindImageAlias, resource.ActionList, c.scopeParams(remote))
}

// CopyImage copies an image to another remote under a new alias.
// An unqualified source comes from the images remote and an empty destination is the local daemon.
func (c *Client) CopyImage(ctx context.Context, source string, destination string, alias string) error {
	params := command.Params{
		"source": source,
		"alias":  alias,
	}

	if destination != "" {
		params["destination"] = destination
	}

	_, err := c.Run(ctx, resource.KindImage, resource.ActionCopy, params)
	return err
}
