package api

// Profile represents a LXD profile.
type Profile struct {
	// The profile name
	// Example: foo
	Name string `json:"name" yaml:"name"`

	// Description of the profile
	// Example: Medium size instances
	Description string `json:"description" yaml:"description"`

	// Instance configuration map
	// Example: {"limits.cpu": "4", "limits.memory": "4GiB"}
	Config map[string]string `json:"config" yaml:"config"`

	// List of devices
	// Example: {"root": {"type": "disk", "pool": "default", "path": "/"}, "eth0": {"type": "nic", "network": "lxdbr0", "name": "eth0"}}
	Devices map[string]map[string]string `json:"devices" yaml:"devices"`

	// List of URLs of objects using this profile
	// Example: ["/1.0/instances/c1", "/1.0/instances/v1"]
	UsedBy []string `json:"used_by" yaml:"used_by"`

	// Project name
	// Example: project1
	Project string `json:"project" yaml:"project"`
}
