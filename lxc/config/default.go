package config

import (
	"maps"
	"time"

	"github.com/canonical/lxd-driver/shared/address"
)

// DefaultTimeout is the per command timeout when none is configured.
const DefaultTimeout = 5 * time.Minute

// DefaultKillGrace is the delay between SIGTERM and SIGKILL when none is configured.
const DefaultKillGrace = 5 * time.Second

// DefaultParallel is the number of concurrent batch commands when none is configured.
const DefaultParallel = 4

// LocalRemote is the default local remote (over the LXD unix socket).
var LocalRemote = Remote{
	Addr:   "unix://",
	Static: true,
	Public: false,
}

// ImagesRemote is the main image server (over simplestreams).
var ImagesRemote = Remote{
	Addr:     "https://images.lxd.canonical.com",
	Public:   true,
	Protocol: "simplestreams",
}

// UbuntuRemote is the Ubuntu image server (over simplestreams).
var UbuntuRemote = Remote{
	Addr:     "https://cloud-images.ubuntu.com/releases",
	Static:   true,
	Public:   true,
	Protocol: "simplestreams",
}

// UbuntuDailyRemote is the Ubuntu daily image server (over simplestreams).
var UbuntuDailyRemote = Remote{
	Addr:     "https://cloud-images.ubuntu.com/daily",
	Static:   true,
	Public:   true,
	Protocol: "simplestreams",
}

// StaticRemotes is the list of remotes which can't be removed.
var StaticRemotes = map[string]Remote{
	address.LocalRemote: LocalRemote,
	"ubuntu":            UbuntuRemote,
	"ubuntu-daily":      UbuntuDailyRemote,
}

// DefaultRemotes is the list of default remotes.
var DefaultRemotes = map[string]Remote{
	address.LocalRemote:  LocalRemote,
	address.ImagesRemote: ImagesRemote,
	"ubuntu":             UbuntuRemote,
	"ubuntu-daily":       UbuntuDailyRemote,
}

// DefaultAliases are the run aliases available without configuration.
var DefaultAliases = map[string]string{
	"ls":     "container list",
	"launch": "container launch",
	"rm":     "container delete",
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Remotes:       maps.Clone(DefaultRemotes),
		Aliases:       maps.Clone(DefaultAliases),
		DefaultRemote: address.LocalRemote,
	}
}
