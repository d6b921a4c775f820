package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/canonical/lxd-driver/lxc/config"
	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Remote handling functions

// GetRemotes returns the remotes known to lxc, keyed by name.
func (c *Client) GetRemotes(ctx context.Context) (map[string]api.Remote, error) {
	return queryValue[map[string]api.Remote](ctx, c, resource.KindRemote, resource.ActionList, nil)
}

// SyncRemotes adds the remotes known to lxc but missing from the configuration.
// It returns the names of the added remotes.
func (c *Client) SyncRemotes(ctx context.Context) ([]string, error) {
	remotes, err := c.GetRemotes(ctx)
	if err != nil {
		return nil, err
	}

	c.confMu.Lock()
	defer c.confMu.Unlock()

	var added []string
	for name, remote := range remotes {
		if c.conf.HasRemote(name) {
			continue
		}

		err := c.conf.SetRemote(name, config.Remote{
			Addr:     remote.Addr,
			Public:   remote.Public,
			Protocol: remote.Protocol,
			AuthType: remote.AuthType,
			Project:  remote.Project,
		})
		if err != nil {
			return nil, err
		}

		added = append(added, name)
	}

	sort.Strings(added)

	return added, nil
}

// applyRemoteChange mirrors a successful remote command into the configuration, so that later addresses on
// that remote validate.
func (c *Client) applyRemoteChange(action resource.Action, params command.Params) error {
	str := func(key string) string {
		value, _ := params[key].(string)
		return value
	}

	c.confMu.Lock()
	defer c.confMu.Unlock()

	switch action {
	case resource.ActionCreate:
		protocol := str("protocol")
		return c.conf.SetRemote(str("name"), config.Remote{
			Addr:     str("url"),
			Protocol: protocol,
			Public:   protocol == "simplestreams",
		})

	case resource.ActionDelete:
		return c.conf.RemoveRemote(str("name"))

	case resource.ActionRename:
		return c.conf.RenameRemote(str("old"), str("new"))

	case resource.ActionSwitch:
		name := str("name")
		if !c.conf.HasRemote(name) {
			return fmt.Errorf("%w %q", config.ErrUnknownRemote, name)
		}

		c.conf.DefaultRemote = name
	}

	return nil
}
