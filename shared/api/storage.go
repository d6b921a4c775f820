package api

// StoragePool represents the fields of a LXD storage pool.
type StoragePool struct {
	// Storage pool name
	// Example: local
	Name string `json:"name" yaml:"name"`

	// Storage pool driver (btrfs, ceph, cephfs, dir, lvm or zfs)
	// Example: zfs
	Driver string `json:"driver" yaml:"driver"`

	// Description of the storage pool
	// Example: Local SSD pool
	Description string `json:"description" yaml:"description"`

	// Storage pool configuration map
	// Example: {"volume.block.filesystem": "ext4", "volume.size": "50GiB"}
	Config map[string]string `json:"config" yaml:"config"`

	// List of URLs of objects using this storage pool
	// Example: ["/1.0/profiles/default", "/1.0/instances/c1"]
	UsedBy []string `json:"used_by" yaml:"used_by"`

	// Pool status (Pending, Created, Errored or Unknown)
	// Example: Created
	Status string `json:"status" yaml:"status"`

	// Cluster members on which the storage pool has been defined
	// Example: ["lxd01", "lxd02", "lxd03"]
	Locations []string `json:"locations" yaml:"locations"`
}

// StorageVolume represents the fields of a LXD storage volume.
type StorageVolume struct {
	// Volume name
	// Example: foo
	Name string `json:"name" yaml:"name"`

	// Volume type
	// Example: custom
	Type string `json:"type" yaml:"type"`

	// Description of the storage volume
	// Example: My custom volume
	Description string `json:"description" yaml:"description"`

	// Storage volume configuration map
	// Example: {"zfs.remove_snapshots": "true", "size": "50GiB"}
	Config map[string]string `json:"config" yaml:"config"`

	// List of URLs of objects using this storage volume
	// Example: ["/1.0/instances/blah"]
	UsedBy []string `json:"used_by" yaml:"used_by"`

	// What cluster member this record was found on
	// Example: lxd01
	Location string `json:"location" yaml:"location"`

	// Volume content type (filesystem or block)
	// Example: filesystem
	ContentType string `json:"content_type" yaml:"content_type"`

	// Project containing the volume
	// Example: default
	Project string `json:"project" yaml:"project"`
}
