package command

import (
	"fmt"
	"strings"
	"sync"

	"github.com/miekg/dns"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Formats accepted by the "--format" flag of list commands.
var listFormats = []string{"csv", "json", "table", "yaml", "compact"}

var defaultRegistry struct {
	once     sync.Once
	registry *Registry
}

// DefaultRegistry returns the registry holding every supported lxc and lxd command.
func DefaultRegistry() *Registry {
	defaultRegistry.once.Do(func() {
		r := NewRegistry()
		r.MustRegister(defaultEntries()...)
		defaultRegistry.registry = r
	})

	return defaultRegistry.registry
}

func validateFormat(value string) error {
	for _, format := range listFormats {
		if value == format {
			return nil
		}
	}

	return fmt.Errorf("Invalid format %q, must be one of %s", value, strings.Join(listFormats, ", "))
}

func validateDomainName(value string) error {
	_, ok := dns.IsDomainName(value)
	if !ok {
		return fmt.Errorf("Invalid DNS name %q", value)
	}

	return nil
}

// Parameter helpers used by the table below.

func addressParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamAddress}
}

func subAddressParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamSubAddress, Example: "res1/sub1"}
}

func nameParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamName}
}

func stringParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamString}
}

func remoteParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamRemote}
}

// scopeParam defaults to the local daemon, so listings always name their target.
func scopeParam() ParamSpec {
	return ParamSpec{Name: "scope", Type: ParamScope, Optional: true, Default: address.LocalRemote}
}

// optionalScopeParam is left out of the command line when absent.
func optionalScopeParam() ParamSpec {
	return ParamSpec{Name: "scope", Type: ParamScope, Optional: true}
}

func formatParam() ParamSpec {
	return ParamSpec{Name: "format", Type: ParamString, Optional: true, Flag: "--format", Validate: validateFormat, Example: "json"}
}

func switchParam(name string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamSwitch, Optional: true, Flag: "--" + name, Example: "true"}
}

func flagParam(name string, flag string) ParamSpec {
	return ParamSpec{Name: name, Type: ParamString, Flag: flag}
}

func (p ParamSpec) optional() ParamSpec {
	p.Optional = true
	return p
}

func (p ParamSpec) withDefault(value string) ParamSpec {
	p.Optional = true
	p.Default = value
	return p
}

func (p ParamSpec) inherit(name string) ParamSpec {
	p.InheritFrom = name
	return p
}

func (p ParamSpec) remote(name string) ParamSpec {
	p.DefaultRemote = name
	return p
}

func (p ParamSpec) validated(fn func(string) error) ParamSpec {
	p.Validate = fn
	return p
}

func (p ParamSpec) flag(flag string) ParamSpec {
	p.Flag = flag
	return p
}

// newEntry derives the shape from the parameters and the output from the action.
func newEntry(binary Binary, kind resource.Kind, action resource.Action, command string, description string, params ...ParamSpec) Entry {
	output := OutputText
	switch action {
	case resource.ActionList:
		output = OutputJSON
	case resource.ActionShow:
		output = OutputYAML
	}

	return Entry{
		Kind:        kind,
		Action:      action,
		Binary:      binary,
		Command:     strings.Fields(command),
		Params:      params,
		Shape:       inferShape(params),
		Output:      output,
		Description: description,
	}
}

func lxc(kind resource.Kind, action resource.Action, command string, description string, params ...ParamSpec) Entry {
	return newEntry(BinaryLXC, kind, action, command, description, params...)
}

func lxd(kind resource.Kind, action resource.Action, command string, description string, params ...ParamSpec) Entry {
	return newEntry(BinaryLXD, kind, action, command, description, params...)
}

func text(e Entry) Entry {
	e.Output = OutputText
	return e
}

// list returns a listing entry accepting "--format".
func list(kind resource.Kind, command string, description string, params ...ParamSpec) Entry {
	return lxc(kind, resource.ActionList, command, description, append(params, formatParam())...)
}

// properties returns the set, unset and get entries of a configurable object.
func properties(kind resource.Kind, prefix string, noun string, target ...ParamSpec) []Entry {
	key := stringParam("key")
	value := stringParam("value")

	return []Entry{
		lxc(kind, resource.ActionSet, prefix+" set", "Set a "+noun+" configuration key", append(append([]ParamSpec(nil), target...), key, value)...),
		lxc(kind, resource.ActionUnset, prefix+" unset", "Unset a "+noun+" configuration key", append(append([]ParamSpec(nil), target...), key)...),
		lxc(kind, resource.ActionGet, prefix+" get", "Get a "+noun+" configuration key", append(append([]ParamSpec(nil), target...), key)...),
	}
}

func defaultEntries() []Entry {
	var entries []Entry
	add := func(e ...Entry) {
		entries = append(entries, e...)
	}

	// Daemon and cluster.
	add(
		lxd(resource.KindDaemon, resource.ActionInit, "init", "Initialize the daemon"),
		lxd(resource.KindDaemon, resource.ActionVersion, "version", "Show the daemon version"),
		lxd(resource.KindDaemon, resource.ActionShutdown, "shutdown", "Shut the daemon down"),
		lxd(resource.KindCluster, resource.ActionShow, "cluster show", "Show the cluster configuration"),
		text(lxd(resource.KindCluster, resource.ActionList, "cluster list-database", "List the cluster database members")),
		lxd(resource.KindCluster, resource.ActionDelete, "cluster remove-raft-node", "Remove a raft node from the cluster configuration", stringParam("address")),
		lxd(resource.KindCluster, resource.ActionRecover, "cluster recover-from-quorum-loss", "Recover a cluster member after quorum loss"),
	)

	// Images.
	add(
		list(resource.KindImage, "image list", "List images", scopeParam(), stringParam("filter").optional()),
		lxc(resource.KindImage, resource.ActionInfo, "image info", "Show image information", addressParam("image")),
		lxc(resource.KindImage, resource.ActionShow, "image show", "Show image properties", addressParam("image")),
		lxc(resource.KindImage, resource.ActionCopy, "image copy", "Copy an image between remotes",
			addressParam("source").remote(address.ImagesRemote),
			ParamSpec{Name: "destination", Type: ParamScope}.withDefault(address.LocalRemote),
			flagParam("alias", "--alias")),
		lxc(resource.KindImage, resource.ActionPublish, "publish", "Publish an instance as an image", addressParam("instance"), flagParam("alias", "--alias")),
		lxc(resource.KindImage, resource.ActionExport, "image export", "Export an image to a tarball", addressParam("image"), stringParam("target")),
		lxc(resource.KindImage, resource.ActionImport, "image import", "Import an image from a tarball",
			stringParam("file"), optionalScopeParam(), flagParam("alias", "--alias").optional()),
		lxc(resource.KindImage, resource.ActionDelete, "image delete", "Delete an image", addressParam("image")),
		lxc(resource.KindImage, resource.ActionRefresh, "image refresh", "Refresh an image", addressParam("image")),
		lxc(resource.KindImage, resource.ActionSet, "image set-property", "Set an image property", addressParam("image"), stringParam("key"), stringParam("value")),
		lxc(resource.KindImage, resource.ActionUnset, "image unset-property", "Unset an image property", addressParam("image"), stringParam("key")),
		lxc(resource.KindImage, resource.ActionGet, "image get-property", "Get an image property", addressParam("image"), stringParam("key")),

		list(resource.KindImageAlias, "image alias list", "List image aliases", scopeParam()),
		lxc(resource.KindImageAlias, resource.ActionCreate, "image alias create", "Create an image alias", addressParam("alias"), stringParam("fingerprint")),
		lxc(resource.KindImageAlias, resource.ActionDelete, "image alias delete", "Delete an image alias", addressParam("alias")),
		lxc(resource.KindImageAlias, resource.ActionRename, "image alias rename", "Rename an image alias", addressParam("alias"), nameParam("new")),
	)

	// Instances.
	add(
		list(resource.KindContainer, "list", "List instances", scopeParam()),
		lxc(resource.KindContainer, resource.ActionInfo, "info", "Show instance information", addressParam("instance")),
		lxc(resource.KindContainer, resource.ActionShow, "config show", "Show the instance configuration", addressParam("instance")),
		lxc(resource.KindContainer, resource.ActionLaunch, "launch", "Create and start an instance from an image",
			addressParam("image").remote(address.ImagesRemote),
			addressParam("instance"),
			nameParam("profile").flag("--profile").optional(),
			switchParam("ephemeral")),
		lxc(resource.KindContainer, resource.ActionStart, "start", "Start an instance", addressParam("instance")),
		lxc(resource.KindContainer, resource.ActionStop, "stop", "Stop an instance", addressParam("instance"), switchParam("force")),
		lxc(resource.KindContainer, resource.ActionRestart, "restart", "Restart an instance", addressParam("instance")),
		lxc(resource.KindContainer, resource.ActionDelete, "delete", "Delete an instance", addressParam("instance"), switchParam("force")),
		lxc(resource.KindContainer, resource.ActionRename, "move", "Rename an instance", addressParam("old"), addressParam("new").inherit("old")),
		lxc(resource.KindContainer, resource.ActionCopy, "copy", "Copy an instance",
			addressParam("source"), addressParam("destination").inherit("source"), switchParam("instance-only")),
		lxc(resource.KindContainer, resource.ActionMove, "move", "Move an instance between remotes",
			addressParam("source"), addressParam("destination").inherit("source")),
		lxc(resource.KindContainer, resource.ActionPush, "file push", "Push a file into an instance", stringParam("source"), subAddressParam("target")),
		lxc(resource.KindContainer, resource.ActionPull, "file pull", "Pull a file from an instance", subAddressParam("source"), stringParam("target")),
	)
	add(properties(resource.KindContainer, "config", "instance", addressParam("instance"))...)

	// Snapshots.
	add(
		lxc(resource.KindSnapshot, resource.ActionCreate, "snapshot", "Snapshot an instance", addressParam("instance"), nameParam("name"), switchParam("stateful")),
		lxc(resource.KindSnapshot, resource.ActionRestore, "restore", "Restore an instance snapshot", addressParam("instance"), nameParam("name")),
		lxc(resource.KindSnapshot, resource.ActionCopy, "copy", "Copy a snapshot to a new instance",
			subAddressParam("snapshot"), addressParam("destination").inherit("snapshot")),
		lxc(resource.KindSnapshot, resource.ActionDelete, "delete", "Delete an instance snapshot", subAddressParam("snapshot")),
	)

	// Storage pools and volumes.
	add(
		list(resource.KindStorage, "storage list", "List storage pools", scopeParam()),
		lxc(resource.KindStorage, resource.ActionInfo, "storage info", "Show storage pool usage", addressParam("pool")),
		lxc(resource.KindStorage, resource.ActionShow, "storage show", "Show storage pool configuration", addressParam("pool")),
		lxc(resource.KindStorage, resource.ActionCreate, "storage create", "Create a storage pool", addressParam("storage_address"), nameParam("filesystem")),
		lxc(resource.KindStorage, resource.ActionDelete, "storage delete", "Delete a storage pool", addressParam("pool")),
	)
	add(properties(resource.KindStorage, "storage", "storage pool", addressParam("pool"))...)

	add(
		list(resource.KindVolume, "storage volume list", "List storage volumes", addressParam("pool")),
		lxc(resource.KindVolume, resource.ActionShow, "storage volume show", "Show storage volume configuration", addressParam("pool"), nameParam("volume")),
		lxc(resource.KindVolume, resource.ActionCreate, "storage volume create", "Create a custom storage volume", addressParam("pool"), nameParam("volume")),
		lxc(resource.KindVolume, resource.ActionDelete, "storage volume delete", "Delete a custom storage volume", addressParam("pool"), nameParam("volume")),
		lxc(resource.KindVolume, resource.ActionRename, "storage volume rename", "Rename a custom storage volume", addressParam("pool"), nameParam("volume"), nameParam("new")),
		lxc(resource.KindVolume, resource.ActionAttach, "storage volume attach", "Attach a custom storage volume to an instance",
			addressParam("pool"), nameParam("volume"), nameParam("instance"), nameParam("device").withDefault("data"), stringParam("path").optional()),
		lxc(resource.KindVolume, resource.ActionDetach, "storage volume detach", "Detach a custom storage volume from an instance",
			addressParam("pool"), nameParam("volume"), nameParam("instance")),
		lxc(resource.KindVolumeProfile, resource.ActionAttach, "storage volume attach-profile", "Attach a custom storage volume to a profile",
			addressParam("pool"), nameParam("volume"), nameParam("profile")),
		lxc(resource.KindVolumeProfile, resource.ActionDetach, "storage volume detach-profile", "Detach a custom storage volume from a profile",
			addressParam("pool"), nameParam("volume"), nameParam("profile")),
	)
	add(properties(resource.KindVolume, "storage volume", "storage volume", addressParam("pool"), nameParam("volume"))...)

	// Profiles.
	add(
		list(resource.KindProfile, "profile list", "List profiles", scopeParam()),
		lxc(resource.KindProfile, resource.ActionShow, "profile show", "Show profile configuration", addressParam("profile")),
		lxc(resource.KindProfile, resource.ActionCreate, "profile create", "Create a profile", addressParam("profile")),
		lxc(resource.KindProfile, resource.ActionDelete, "profile delete", "Delete a profile", addressParam("profile")),
		lxc(resource.KindProfile, resource.ActionCopy, "profile copy", "Copy a profile", addressParam("source"), addressParam("destination").inherit("source")),
		lxc(resource.KindProfile, resource.ActionRename, "profile rename", "Rename a profile", addressParam("profile"), nameParam("new")),
		lxc(resource.KindProfile, resource.ActionAttach, "profile add", "Add a profile to an instance", addressParam("instance"), nameParam("profile")),
		lxc(resource.KindProfile, resource.ActionDetach, "profile remove", "Remove a profile from an instance", addressParam("instance"), nameParam("profile")),
	)
	add(properties(resource.KindProfile, "profile", "profile", addressParam("profile"))...)

	// Networks.
	add(
		list(resource.KindNetwork, "network list", "List networks", scopeParam()),
		lxc(resource.KindNetwork, resource.ActionShow, "network show", "Show network configuration", addressParam("network")),
		lxc(resource.KindNetwork, resource.ActionInfo, "network info", "Show network runtime information", addressParam("network")),
		lxc(resource.KindNetwork, resource.ActionCreate, "network create", "Create a network", addressParam("network")),
		lxc(resource.KindNetwork, resource.ActionDelete, "network delete", "Delete a network", addressParam("network")),
		lxc(resource.KindNetwork, resource.ActionRename, "network rename", "Rename a network", addressParam("network"), nameParam("new")),
	)
	add(properties(resource.KindNetwork, "network", "network", addressParam("network"))...)

	add(
		list(resource.KindNetworkLease, "network list-leases", "List DHCP leases of a network", addressParam("network")),
		list(resource.KindNetworkForward, "network forward list", "List network forwards", addressParam("network")),
		lxc(resource.KindNetworkForward, resource.ActionShow, "network forward show", "Show a network forward", addressParam("network"), stringParam("listen_address")),
		lxc(resource.KindNetworkForward, resource.ActionDelete, "network forward delete", "Delete a network forward", addressParam("network"), stringParam("listen_address")),
		list(resource.KindNetworkACL, "network acl list", "List network ACLs", scopeParam()),
		lxc(resource.KindNetworkACL, resource.ActionShow, "network acl show", "Show a network ACL", addressParam("acl")),
		lxc(resource.KindNetworkACL, resource.ActionCreate, "network acl create", "Create a network ACL", addressParam("acl")),
		lxc(resource.KindNetworkACL, resource.ActionDelete, "network acl delete", "Delete a network ACL", addressParam("acl")),
	)

	// Network zones and records.
	zone := addressParam("zone").validated(validateDomainName)
	record := nameParam("record").validated(validateDomainName)
	add(
		list(resource.KindNetworkZone, "network zone list", "List network zones", scopeParam()),
		lxc(resource.KindNetworkZone, resource.ActionShow, "network zone show", "Show network zone configuration", zone),
		lxc(resource.KindNetworkZone, resource.ActionCreate, "network zone create", "Create a network zone", zone),
		lxc(resource.KindNetworkZone, resource.ActionDelete, "network zone delete", "Delete a network zone", zone),
	)
	add(properties(resource.KindNetworkZone, "network zone", "network zone", zone)...)

	add(
		list(resource.KindNetworkZoneRecord, "network zone record list", "List network zone records", zone),
		lxc(resource.KindNetworkZoneRecord, resource.ActionShow, "network zone record show", "Show a network zone record", zone, record),
		lxc(resource.KindNetworkZoneRecord, resource.ActionCreate, "network zone record create", "Create a network zone record", zone, record),
		lxc(resource.KindNetworkZoneRecord, resource.ActionDelete, "network zone record delete", "Delete a network zone record", zone, record),
	)
	add(properties(resource.KindNetworkZoneRecord, "network zone record", "network zone record", zone, record)...)

	// Projects.
	add(
		list(resource.KindProject, "project list", "List projects", scopeParam()),
		lxc(resource.KindProject, resource.ActionInfo, "project info", "Show project resource usage", addressParam("project")),
		lxc(resource.KindProject, resource.ActionShow, "project show", "Show project configuration", addressParam("project")),
		lxc(resource.KindProject, resource.ActionCreate, "project create", "Create a project", addressParam("project")),
		lxc(resource.KindProject, resource.ActionDelete, "project delete", "Delete a project", addressParam("project")),
		lxc(resource.KindProject, resource.ActionRename, "project rename", "Rename a project", addressParam("project"), nameParam("new")),
		lxc(resource.KindProject, resource.ActionSwitch, "project switch", "Switch the current project", addressParam("project")),
	)
	add(properties(resource.KindProject, "project", "project", addressParam("project"))...)

	// Operations.
	add(
		list(resource.KindOperation, "operation list", "List background operations", scopeParam()),
		lxc(resource.KindOperation, resource.ActionShow, "operation show", "Show a background operation", addressParam("operation")),
		lxc(resource.KindOperation, resource.ActionDelete, "operation delete", "Cancel a background operation", addressParam("operation")),
	)

	// Server configuration, trust store and instance configuration trees.
	add(properties(resource.KindConfigKey, "config", "server", optionalScopeParam())...)
	add(
		list(resource.KindTrust, "config trust list", "List trusted clients", optionalScopeParam()),
		lxc(resource.KindTrust, resource.ActionShow, "config trust show", "Show a trusted client", addressParam("fingerprint")),
		lxc(resource.KindTrust, resource.ActionDelete, "config trust remove", "Remove a trusted client", addressParam("fingerprint")),
		list(resource.KindTrustToken, "config trust list-tokens", "List pending trust tokens", optionalScopeParam()),
		lxc(resource.KindTrustToken, resource.ActionCreate, "config trust add", "Issue a trust token for a new client", optionalScopeParam(), flagParam("name", "--name")),
		lxc(resource.KindTrustToken, resource.ActionDelete, "config trust revoke-token", "Revoke a pending trust token", addressParam("token")),

		text(lxc(resource.KindConfigTemplate, resource.ActionList, "config template list", "List instance file templates", addressParam("instance"))),
		lxc(resource.KindConfigTemplate, resource.ActionShow, "config template show", "Show an instance file template", addressParam("instance"), nameParam("template")),
		lxc(resource.KindConfigTemplate, resource.ActionCreate, "config template create", "Create an instance file template", addressParam("instance"), nameParam("template")),
		lxc(resource.KindConfigTemplate, resource.ActionDelete, "config template delete", "Delete an instance file template", addressParam("instance"), nameParam("template")),

		lxc(resource.KindConfigMetadata, resource.ActionShow, "config metadata show", "Show instance metadata", addressParam("instance")),

		text(lxc(resource.KindConfigDevice, resource.ActionList, "config device list", "List instance devices", addressParam("instance"))),
		lxc(resource.KindConfigDevice, resource.ActionShow, "config device show", "Show instance devices", addressParam("instance")),
		lxc(resource.KindConfigDevice, resource.ActionCreate, "config device add", "Add an instance device", addressParam("instance"), nameParam("device"), nameParam("type")),
		lxc(resource.KindConfigDevice, resource.ActionDelete, "config device remove", "Remove an instance device", addressParam("instance"), nameParam("device")),
	)
	add(properties(resource.KindConfigDevice, "config device", "instance device", addressParam("instance"), nameParam("device"))...)

	// Remotes.
	add(
		list(resource.KindRemote, "remote list", "List remotes"),
		lxc(resource.KindRemote, resource.ActionGet, "remote get-default", "Show the default remote"),
		lxc(resource.KindRemote, resource.ActionCreate, "remote add", "Add a remote",
			remoteParam("name"), stringParam("url"),
			nameParam("protocol").flag("--protocol").optional(),
			switchParam("accept-certificate")),
		lxc(resource.KindRemote, resource.ActionRename, "remote rename", "Rename a remote", remoteParam("old"), remoteParam("new")),
		lxc(resource.KindRemote, resource.ActionDelete, "remote remove", "Remove a remote", remoteParam("name")),
		lxc(resource.KindRemote, resource.ActionSwitch, "remote switch", "Change the default remote", remoteParam("name")),
	)

	return entries
}
