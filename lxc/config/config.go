package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/canonical/lxd-driver/shared/command"
)

// Config holds settings to be used by the driver.
type Config struct {
	// DefaultRemote holds the remote name from the Remotes map
	// that unqualified addresses are placed in
	DefaultRemote string `yaml:"default-remote"`

	// Remotes defines a map of remote names to their details
	Remotes map[string]Remote `yaml:"remotes"`

	// Command line aliases for `lxd-driver run`, mapping a name to "<kind> <action>"
	Aliases map[string]string `yaml:"aliases"`

	// Paths of the binaries to execute
	Binaries Binaries `yaml:"binaries"`

	// Timeout of a single command, as a Go duration
	TimeoutValue string `yaml:"timeout,omitempty"`

	// Delay between SIGTERM and SIGKILL when stopping a command, as a Go duration
	KillGraceValue string `yaml:"kill-grace,omitempty"`

	// Number of commands run concurrently by batches
	Parallel int `yaml:"parallel,omitempty"`

	// Logging settings
	Log Log `yaml:"log"`

	// Configuration directory
	ConfigDir string `yaml:"-"`
}

// Binaries holds the paths of the lxc and lxd binaries. Empty values are looked up in PATH.
type Binaries struct {
	LXC string `yaml:"lxc,omitempty"`
	LXD string `yaml:"lxd,omitempty"`
}

// Path returns the configured path for binary, or its name when none is set.
func (b Binaries) Path(binary command.Binary) string {
	switch binary {
	case command.BinaryLXC:
		if b.LXC != "" {
			return b.LXC
		}

	case command.BinaryLXD:
		if b.LXD != "" {
			return b.LXD
		}
	}

	return string(binary)
}

// Log holds the logging settings.
type Log struct {
	File    string `yaml:"file,omitempty"`
	Debug   bool   `yaml:"debug,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// DefaultConfigDir returns $LXD_DRIVER_CONF, falling back to ~/.config/lxd-driver.
func DefaultConfigDir() (string, error) {
	configDir := os.Getenv("LXD_DRIVER_CONF")
	if configDir != "" {
		return configDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Failed to find the home directory: %w", err)
	}

	return filepath.Join(home, ".config", "lxd-driver"), nil
}

// ConfigPath returns a joined path of the configuration directory and passed arguments.
func (c *Config) ConfigPath(paths ...string) string {
	path := []string{c.ConfigDir}
	path = append(path, paths...)

	return filepath.Join(path...)
}

// LogFile returns the path of the log file, relative paths being in the configuration directory.
func (c *Config) LogFile() string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}

	return c.ConfigPath(c.Log.File)
}

// Timeout returns the per command timeout. Zero means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	return parseDuration("timeout", c.TimeoutValue, DefaultTimeout)
}

// KillGrace returns the delay between SIGTERM and SIGKILL.
func (c *Config) KillGrace() (time.Duration, error) {
	return parseDuration("kill-grace", c.KillGraceValue, DefaultKillGrace)
}

// Workers returns the number of concurrent commands of a batch.
func (c *Config) Workers() int {
	if c.Parallel <= 0 {
		return DefaultParallel
	}

	return c.Parallel
}

// Validate checks the values that LoadConfig can't check while decoding.
func (c *Config) Validate() error {
	_, err := c.Timeout()
	if err != nil {
		return err
	}

	_, err = c.KillGrace()
	if err != nil {
		return err
	}

	if c.Parallel < 0 {
		return fmt.Errorf("Invalid parallel value %d", c.Parallel)
	}

	for name := range c.Aliases {
		_, _, err := c.ResolveAlias(name)
		if err != nil {
			return err
		}
	}

	if c.DefaultRemote != "" {
		err = c.ValidateRemote(c.DefaultRemote)
		if err != nil {
			return fmt.Errorf("Invalid default remote: %w", err)
		}
	}

	return nil
}

func parseDuration(key string, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("Invalid %s %q: %w", key, value, err)
	}

	if d < 0 {
		return 0, fmt.Errorf("Invalid %s %q: Must not be negative", key, value)
	}

	return d, nil
}

// NewConfig returns a Config, optionally using default remotes.
func NewConfig(configDir string, defaults bool) *Config {
	var config *Config
	if defaults {
		config = DefaultConfig()
	} else {
		config = &Config{}
	}

	config.ConfigDir = configDir

	return config
}
