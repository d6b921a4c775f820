package version

// Version contains the lxd-driver version number.
var Version = "0.3.0"

// MinimumLXD is the oldest lxc client whose command grammar the registry matches.
var MinimumLXD = &DottedVersion{Major: 5, Minor: 0, Patch: -1}
