package client

import (
	"context"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Storage handling functions

// GetStoragePools returns the storage pools of a remote.
func (c *Client) GetStoragePools(ctx context.Context, remote string) ([]api.StoragePool, error) {
	return queryValue[[]api.StoragePool](ctx, c, resource.KindStorage, resource.ActionList, c.scopeParams(remote))
}

// GetStoragePool returns the configuration of a storage pool.
func (c *Client) GetStoragePool(ctx context.Context, pool string) (*api.StoragePool, error) {
	storagePool, err := queryValue[api.StoragePool](ctx, c, resource.KindStorage, resource.ActionShow, command.Params{"pool": pool})
	if err != nil {
		return nil, err
	}

	return &storagePool, nil
}

// GetStoragePoolVolumes returns the volumes of a storage pool.
func (c *Client) GetStoragePoolVolumes(ctx context.Context, pool string) ([]api.StorageVolume, error) {
	return queryValue[[]api.StorageVolume](ctx, c, resource.KindVolume, resource.ActionList, command.Params{"pool": pool})
}

// CreateStoragePool creates a storage pool using driver (dir, zfs, btrfs, lvm...).
func (c *Client) CreateStoragePool(ctx context.Context, pool string, driver string) error {
	_, err := c.Run(ctx, resource.KindStorage, resource.ActionCreate, command.Params{"storage_address": pool, "filesystem": driver})
	return err
}

// CreateStoragePoolVolume creates a custom volume in a storage pool.
func (c *Client) CreateStoragePoolVolume(ctx context.Context, pool string, volume string) error {
	_, err := c.Run(ctx, resource.KindVolume, resource.ActionCreate, command.Params{"pool": pool, "volume": volume})
	return err
}
