package resource

import (
	"fmt"
)

// Kind represents a class of object managed through the lxc or lxd binaries.
type Kind string

const (
	// KindContainer represents instances (containers and virtual machines).
	KindContainer Kind = "container"

	// KindImage represents images.
	KindImage Kind = "image"

	// KindImageAlias represents image aliases.
	KindImageAlias Kind = "image-alias"

	// KindStorage represents storage pools.
	KindStorage Kind = "storage"

	// KindVolume represents custom storage volumes.
	KindVolume Kind = "volume"

	// KindVolumeProfile represents the attachment of a custom volume to a profile.
	KindVolumeProfile Kind = "volume-profile"

	// KindProfile represents profiles.
	KindProfile Kind = "profile"

	// KindNetwork represents networks.
	KindNetwork Kind = "network"

	// KindNetworkACL represents network ACLs.
	KindNetworkACL Kind = "network-acl"

	// KindNetworkForward represents network forwards.
	KindNetworkForward Kind = "network-forward"

	// KindNetworkLease represents DHCP leases of a network.
	KindNetworkLease Kind = "network-lease"

	// KindNetworkZone represents network zones.
	KindNetworkZone Kind = "network-zone"

	// KindNetworkZoneRecord represents records of a network zone.
	KindNetworkZoneRecord Kind = "network-zone-record"

	// KindSnapshot represents instance snapshots.
	KindSnapshot Kind = "snapshot"

	// KindProject represents projects.
	KindProject Kind = "project"

	// KindOperation represents background operations.
	KindOperation Kind = "operation"

	// KindConfigKey represents server configuration keys.
	KindConfigKey Kind = "config-key"

	// KindConfigTemplate represents instance file templates.
	KindConfigTemplate Kind = "config-template"

	// KindConfigDevice represents instance devices.
	KindConfigDevice Kind = "config-device"

	// KindConfigMetadata represents instance metadata.
	KindConfigMetadata Kind = "config-metadata"

	// KindTrust represents trusted client certificates.
	KindTrust Kind = "trust"

	// KindTrustToken represents pending trust tokens.
	KindTrustToken Kind = "trust-token"

	// KindRemote represents the remotes known to the client.
	KindRemote Kind = "remote"

	// KindDaemon represents the daemon itself.
	KindDaemon Kind = "daemon"

	// KindCluster represents the daemon's cluster database.
	KindCluster Kind = "cluster"
)

// kinds is the source of truth for the available kinds. The order is the one used when listing them.
var kinds = []Kind{
	KindContainer,
	KindImage,
	KindImageAlias,
	KindStorage,
	KindVolume,
	KindVolumeProfile,
	KindProfile,
	KindNetwork,
	KindNetworkACL,
	KindNetworkForward,
	KindNetworkLease,
	KindNetworkZone,
	KindNetworkZoneRecord,
	KindSnapshot,
	KindProject,
	KindOperation,
	KindConfigKey,
	KindConfigTemplate,
	KindConfigDevice,
	KindConfigMetadata,
	KindTrust,
	KindTrustToken,
	KindRemote,
	KindDaemon,
	KindCluster,
}

// String implements fmt.Stringer for Kind.
func (k Kind) String() string {
	return string(k)
}

// Validate returns an error if the Kind is unknown.
func (k Kind) Validate() error {
	for _, known := range kinds {
		if k == known {
			return nil
		}
	}

	return fmt.Errorf("Unknown resource kind %q", string(k))
}

// ParseKind returns the Kind matching the given name.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	err := k.Validate()
	if err != nil {
		return "", err
	}

	return k, nil
}

// Kinds returns all known kinds.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}
