package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("LXC_REMOTE", "")

	dir := t.TempDir()
	c, err := LoadConfig(filepath.Join(dir, "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, dir, c.ConfigDir)
	assert.Equal(t, address.LocalRemote, c.DefaultRemote)
	assert.True(t, c.HasRemote("images"))
	assert.True(t, c.Remotes["ubuntu"].Static)
	assert.Equal(t, "container list", c.Aliases["ls"])

	timeout, err := c.Timeout()
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, timeout)

	grace, err := c.KillGrace()
	require.NoError(t, err)
	assert.Equal(t, DefaultKillGrace, grace)
	assert.Equal(t, DefaultParallel, c.Workers())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("LXC_REMOTE", "")

	path := writeConfig(t, `default-remote: lxd01
remotes:
  lxd01:
    addr: https://10.0.0.1:8443
    public: false
    project: web
  local:
    addr: unix:///somewhere/else
    project: dev
binaries:
  lxc: /snap/bin/lxc
timeout: 30s
kill-grace: 2s
parallel: 8
log:
  debug: true
`)

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "lxd01", c.DefaultRemote)
	assert.Equal(t, "web", c.Remotes["lxd01"].Project)
	assert.False(t, c.Remotes["lxd01"].Static)

	// Static remotes are re-applied, keeping only the project.
	assert.Equal(t, "unix://", c.Remotes["local"].Addr)
	assert.Equal(t, "dev", c.Remotes["local"].Project)
	assert.True(t, c.Remotes["local"].Static)

	assert.Equal(t, "/snap/bin/lxc", c.Binaries.Path(command.BinaryLXC))
	assert.Equal(t, "lxd", c.Binaries.Path(command.BinaryLXD))

	timeout, err := c.Timeout()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, timeout)

	grace, err := c.KillGrace()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, grace)
	assert.Equal(t, 8, c.Workers())
	assert.True(t, c.Log.Debug)
	assert.Equal(t, DefaultAliases, c.Aliases)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, `default-remote: local
remotes:
  lxd01:
    addr: https://10.0.0.1:8443
`)

	t.Setenv("LXC_REMOTE", "lxd01")
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lxd01", c.DefaultRemote)

	t.Setenv("LXC_REMOTE", "missing")
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrUnknownRemote)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("LXC_REMOTE", "")

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "bad yaml",
			content: "remotes: [",
			errMsg:  "Unable to decode the configuration",
		},
		{
			name:    "unknown key",
			content: "remote: lxd01\n",
			errMsg:  "Unable to decode the configuration",
		},
		{
			name:    "bad timeout",
			content: "timeout: soon\n",
			errMsg:  `Invalid timeout "soon"`,
		},
		{
			name:    "negative kill grace",
			content: "kill-grace: -1s\n",
			errMsg:  `Invalid kill-grace "-1s": Must not be negative`,
		},
		{
			name:    "negative parallel",
			content: "parallel: -2\n",
			errMsg:  "Invalid parallel value -2",
		},
		{
			name:    "bad alias",
			content: "aliases:\n  up: container\n",
			errMsg:  `Invalid alias "up"`,
		},
		{
			name:    "unknown default remote",
			content: "default-remote: nowhere\n",
			errMsg:  `Invalid default remote: Unknown remote "nowhere"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveConfig(t *testing.T) {
	t.Setenv("LXC_REMOTE", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yml")

	c := NewConfig(filepath.Dir(path), true)
	require.NoError(t, c.SetRemote("lxd01", Remote{Addr: "https://10.0.0.1:8443"}))
	c.DefaultRemote = "lxd01"
	c.TimeoutValue = "1m"

	err := c.SaveConfig(path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "ubuntu-daily")
	assert.NotContains(t, string(content), "unix://")
	assert.Contains(t, string(content), "lxd01")

	// No temporary file is left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)

	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	assert.ElementsMatch(t, []string{"config.yml", "config.yml.lock"}, names)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "lxd01", loaded.DefaultRemote)
	assert.Equal(t, "https://10.0.0.1:8443", loaded.Remotes["lxd01"].Addr)
	assert.True(t, loaded.HasRemote("ubuntu"))

	timeout, err := loaded.Timeout()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, timeout)
}

func TestSaveConfigConcurrent(t *testing.T) {
	t.Setenv("LXC_REMOTE", "")

	path := filepath.Join(t.TempDir(), "config.yml")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			c := NewConfig(filepath.Dir(path), true)
			assert.NoError(t, c.SetRemote(fmt.Sprintf("lxd%02d", i), Remote{Addr: "https://10.0.0.1:8443"}))
			assert.NoError(t, c.SaveConfig(path))
		}()
	}

	wg.Wait()

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, loaded.RemoteNames(), len(StaticRemotes)+1+1)
}

func TestParseRemote(t *testing.T) {
	c := DefaultConfig()

	remote, name, err := c.ParseRemote("images:ubuntu/22.04")
	require.NoError(t, err)
	assert.Equal(t, "images", remote)
	assert.Equal(t, "ubuntu/22.04", name)

	remote, name, err = c.ParseRemote("c1")
	require.NoError(t, err)
	assert.Equal(t, "local", remote)
	assert.Equal(t, "c1", name)

	_, _, err = c.ParseRemote("nowhere:c1")
	assert.ErrorIs(t, err, ErrUnknownRemote)
	assert.EqualError(t, err, `Unknown remote "nowhere"`)
}

func TestParseAddress(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.SetRemote("lxd01", Remote{Addr: "https://10.0.0.1:8443"}))
	c.DefaultRemote = "lxd01"

	addr, err := c.ParseAddress("c1/snap0")
	require.NoError(t, err)
	assert.Equal(t, "lxd01:c1/snap0", addr.Render())

	addr, err = c.ParseAddress("local:c1")
	require.NoError(t, err)
	assert.True(t, addr.Scope.IsLocal())

	_, err = c.ParseAddress("other:c1")
	assert.ErrorIs(t, err, ErrUnknownRemote)

	_, err = c.ParseAddress("lxd01:")
	assert.ErrorIs(t, err, address.ErrEmptyResource)
}

func TestValidateRemote(t *testing.T) {
	c := NewConfig("", false)

	assert.NoError(t, c.ValidateRemote("local"))
	assert.ErrorIs(t, c.ValidateRemote("lxd01"), ErrUnknownRemote)
	assert.ErrorIs(t, c.ValidateRemote("a/b"), address.ErrInvalidRemoteName)
}

func TestRemoteLifecycle(t *testing.T) {
	c := DefaultConfig()
	c.Remotes["local"] = LocalRemote

	require.NoError(t, c.SetRemote("lxd01", Remote{Addr: "https://10.0.0.1:8443"}))
	c.DefaultRemote = "lxd01"

	require.NoError(t, c.RenameRemote("lxd01", "lxd02"))
	assert.False(t, c.HasRemote("lxd01"))
	assert.Equal(t, "lxd02", c.DefaultRemote)

	err := c.RenameRemote("lxd02", "images")
	assert.EqualError(t, err, `Remote "images" already exists`)

	require.NoError(t, c.RemoveRemote("lxd02"))
	assert.Equal(t, "local", c.DefaultRemote)

	assert.ErrorIs(t, c.RemoveRemote("lxd02"), ErrUnknownRemote)
	assert.ErrorIs(t, c.RemoveRemote("local"), ErrStaticRemote)
	assert.ErrorIs(t, c.SetRemote("ubuntu", Remote{}), ErrStaticRemote)
	assert.ErrorIs(t, c.SetRemote("a:b", Remote{}), address.ErrInvalidRemoteName)

	assert.Equal(t, []string{"images", "local", "ubuntu", "ubuntu-daily"}, c.RemoteNames())
}

func TestResolveAlias(t *testing.T) {
	c := DefaultConfig()
	c.Aliases["snap"] = "snapshot create"

	kind, action, err := c.ResolveAlias("snap")
	require.NoError(t, err)
	assert.Equal(t, resource.KindSnapshot, kind)
	assert.Equal(t, resource.ActionCreate, action)

	_, _, err = c.ResolveAlias("missing")
	assert.EqualError(t, err, `Unknown alias "missing"`)

	c.Aliases["bad"] = "container explode"
	_, _, err = c.ResolveAlias("bad")
	assert.ErrorContains(t, err, `Invalid alias "bad"`)
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("LXD_DRIVER_CONF", "/tmp/driver")
	dir, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/driver", dir)

	t.Setenv("LXD_DRIVER_CONF", "")
	t.Setenv("HOME", "/home/ubuntu")
	dir, err = DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/ubuntu/.config/lxd-driver", dir)
}

func TestLogFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "unset", file: "", want: ""},
		{name: "absolute", file: "/var/log/lxd-driver.log", want: "/var/log/lxd-driver.log"},
		{name: "relative", file: "logs/driver.log", want: "/etc/lxd-driver/logs/driver.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig("/etc/lxd-driver", true)
			c.Log.File = tt.file
			assert.Equal(t, tt.want, c.LogFile())
		})
	}
}
