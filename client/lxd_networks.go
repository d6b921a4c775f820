package client

import (
	"context"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Network handling functions

// GetNetworks returns the networks of a remote.
func (c *Client) GetNetworks(ctx context.Context, remote string) ([]api.Network, error) {
	return queryValue[[]api.Network](ctx, c, resource.KindNetwork, resource.ActionList, c.scopeParams(remote))
}

// GetNetworkLeases returns the DHCP leases of a network.
func (c *Client) GetNetworkLeases(ctx context.Context, network string) ([]api.NetworkLease, error) {
	return queryValue[[]api.NetworkLease](ctx, c, resource.KindNetworkLease, resource.ActionList, command.Params{"network": network})
}

// GetNetworkZones returns the network zones of a remote.
func (c *Client) GetNetworkZones(ctx context.Context, remote string) ([]api.NetworkZone, error) {
	return queryValue[[]api.NetworkZone](ctx, c, resource.KindNetworkZone, resource.ActionList, c.scopeParams(remote))
}

// GetNetworkZoneRecords returns the records of a network zone.
func (c *Client) GetNetworkZoneRecords(ctx context.Context, zone string) ([]api.NetworkZoneRecord, error) {
	return queryValue[[]api.NetworkZoneRecord](ctx, c, resource.KindNetworkZoneRecord, resource.ActionList, command.Params{"zone": zone})
}
