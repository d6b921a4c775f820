package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fvbommel/sortorder"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/resource"
)

// Remote holds details for communication with a remote daemon.
type Remote struct {
	Addr     string `yaml:"addr"`
	Public   bool   `yaml:"public"`
	Protocol string `yaml:"protocol,omitempty"`
	AuthType string `yaml:"auth_type,omitempty"`
	Static   bool   `yaml:"-"`
	Project  string `yaml:"project,omitempty"`
}

// HasRemote returns true when name is a configured remote. The local remote always exists.
func (c *Config) HasRemote(name string) bool {
	if name == address.LocalRemote {
		return true
	}

	_, ok := c.Remotes[name]
	return ok
}

// ValidateRemote checks that name is a configured remote.
func (c *Config) ValidateRemote(name string) error {
	err := address.ValidateRemoteName(name)
	if err != nil {
		return fmt.Errorf("%w %q", err, name)
	}

	if !c.HasRemote(name) {
		return fmt.Errorf("%w %q", ErrUnknownRemote, name)
	}

	return nil
}

// ParseRemote splits remote and object.
func (c *Config) ParseRemote(raw string) (string, string, error) {
	remote, name, ok := address.SplitRemote(raw)
	if !ok {
		return c.DefaultRemote, raw, nil
	}

	err := c.ValidateRemote(remote)
	if err != nil {
		return "", "", err
	}

	return remote, name, nil
}

// ParseAddress parses raw into an address, placing unqualified names in the default remote.
func (c *Config) ParseAddress(raw string) (address.Address, error) {
	addr, err := address.Parse(raw, c.DefaultRemote)
	if err != nil {
		return address.Address{}, err
	}

	err = c.ValidateRemote(addr.Scope.Name())
	if err != nil {
		return address.Address{}, err
	}

	return addr, nil
}

// RemoteNames returns the configured remote names in natural order.
func (c *Config) RemoteNames() []string {
	names := make([]string, 0, len(c.Remotes))
	for name := range c.Remotes {
		names = append(names, name)
	}

	sort.Sort(sortorder.Natural(names))

	return names
}

// SetRemote adds or replaces a remote.
func (c *Config) SetRemote(name string, remote Remote) error {
	err := address.ValidateRemoteName(name)
	if err != nil {
		return fmt.Errorf("%w %q", err, name)
	}

	existing, ok := c.Remotes[name]
	if ok && existing.Static {
		return fmt.Errorf("%w: %q", ErrStaticRemote, name)
	}

	if c.Remotes == nil {
		c.Remotes = map[string]Remote{}
	}

	remote.Static = false
	c.Remotes[name] = remote

	return nil
}

// RemoveRemote removes a remote. The default remote falls back to local when removed.
func (c *Config) RemoveRemote(name string) error {
	remote, ok := c.Remotes[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownRemote, name)
	}

	if remote.Static {
		return fmt.Errorf("%w: %q", ErrStaticRemote, name)
	}

	delete(c.Remotes, name)

	if c.DefaultRemote == name {
		c.DefaultRemote = address.LocalRemote
	}

	return nil
}

// RenameRemote renames a remote, following it with the default remote.
func (c *Config) RenameRemote(oldName string, newName string) error {
	remote, ok := c.Remotes[oldName]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownRemote, oldName)
	}

	if remote.Static {
		return fmt.Errorf("%w: %q", ErrStaticRemote, oldName)
	}

	if c.HasRemote(newName) {
		return fmt.Errorf("Remote %q already exists", newName)
	}

	err := c.SetRemote(newName, remote)
	if err != nil {
		return err
	}

	delete(c.Remotes, oldName)

	if c.DefaultRemote == oldName {
		c.DefaultRemote = newName
	}

	return nil
}

// ResolveAlias returns the kind and action a run alias stands for.
func (c *Config) ResolveAlias(name string) (resource.Kind, resource.Action, error) {
	target, ok := c.Aliases[name]
	if !ok {
		return "", "", fmt.Errorf("Unknown alias %q", name)
	}

	fields := strings.Fields(target)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("Invalid alias %q: Expected \"<kind> <action>\", got %q", name, target)
	}

	kind, err := resource.ParseKind(fields[0])
	if err != nil {
		return "", "", fmt.Errorf("Invalid alias %q: %w", name, err)
	}

	action, err := resource.ParseAction(fields[1])
	if err != nil {
		return "", "", fmt.Errorf("Invalid alias %q: %w", name, err)
	}

	return kind, action, nil
}
