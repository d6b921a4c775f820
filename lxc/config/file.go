package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/canonical/lxd-driver/shared/address"
)

// LoadConfig reads the configuration from the config path; if the path does
// not exist, it returns a default configuration.
func LoadConfig(path string) (*Config, error) {
	c := NewConfig(filepath.Dir(path), true)

	// Open the config file
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("Unable to read the configuration file: %w", err)
	}

	if err == nil {
		// Decode the YAML document
		c = NewConfig(filepath.Dir(path), false)
		err = yaml.UnmarshalStrict(content, c)
		if err != nil {
			return nil, fmt.Errorf("Unable to decode the configuration: %w", err)
		}
	}

	// Set default values
	if c.Remotes == nil {
		c.Remotes = make(map[string]Remote)
	}

	if c.Aliases == nil {
		c.Aliases = maps.Clone(DefaultAliases)
	}

	// Apply the static remotes
	for k, v := range StaticRemotes {
		if c.Remotes[k].Project != "" {
			v.Project = c.Remotes[k].Project
		}

		c.Remotes[k] = v
	}

	// If the environment specifies a remote this takes priority over what
	// is defined in the configuration
	envDefaultRemote := os.Getenv("LXC_REMOTE")
	if len(envDefaultRemote) > 0 {
		c.DefaultRemote = envDefaultRemote
	} else if c.DefaultRemote == "" {
		c.DefaultRemote = address.LocalRemote
	}

	err = c.Validate()
	if err != nil {
		return nil, fmt.Errorf("Invalid configuration %q: %w", path, err)
	}

	return c, nil
}

// SaveConfig writes the provided configuration to the config file.
// The file is replaced atomically so a concurrent reader never sees a partial document.
func (c *Config) SaveConfig(path string) error {
	// Create a new copy for the config file
	conf := *c
	conf.Remotes = maps.Clone(c.Remotes)

	// Remove the static remotes
	for k, v := range c.Remotes {
		if v.Static {
			delete(conf.Remotes, k)
		}
	}

	data, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("Unable to marshal the configuration: %w", err)
	}

	err = os.MkdirAll(filepath.Dir(path), 0750)
	if err != nil {
		return fmt.Errorf("Unable to create the configuration directory: %w", err)
	}

	// Serialize writers sharing the configuration directory.
	lock, err := os.OpenFile(path+".lock", os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("Unable to open the configuration lock: %w", err)
	}

	defer func() { _ = lock.Close() }()

	err = lockFile(lock)
	if err != nil {
		return fmt.Errorf("Unable to lock the configuration: %w", err)
	}

	defer func() { _ = unlockFile(lock) }()

	f, err := os.CreateTemp(filepath.Dir(path), ".config.yml.*")
	if err != nil {
		return fmt.Errorf("Unable to create the configuration file: %w", err)
	}

	tmpPath := f.Name()
	defer func() { _ = os.Remove(tmpPath) }()
	defer func() { _ = f.Close() }()

	_, err = f.Write(data)
	if err != nil {
		return fmt.Errorf("Unable to write the configuration: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("Unable to close the configuration file: %w", err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("Unable to replace the configuration file: %w", err)
	}

	return nil
}
