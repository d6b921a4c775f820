package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/canonical/lxd-driver/lxc/config"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/logger"
	"github.com/canonical/lxd-driver/shared/subprocess"
)

// Client runs registry commands against the remotes of a configuration.
type Client struct {
	// confMu guards the remotes of conf, which change when remotes are added or removed through the client.
	confMu sync.RWMutex
	conf   *config.Config

	registry *command.Registry
	runner   Runner
	timeout  time.Duration
	logger   logger.Logger

	timeoutSet bool
}

// Option configures a Client.
type Option func(*Client)

// WithRunner replaces the process executor.
func WithRunner(runner Runner) Option {
	return func(c *Client) {
		c.runner = runner
	}
}

// WithRegistry replaces the default command registry.
func WithRegistry(registry *command.Registry) Option {
	return func(c *Client) {
		c.registry = registry
	}
}

// WithTimeout overrides the configured per command timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.timeoutSet = true
	}
}

// WithLogger sets the logger of the client and of its default executor.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New returns a Client for conf. A nil conf uses the default configuration.
func New(conf *config.Config, opts ...Option) (*Client, error) {
	if conf == nil {
		conf = config.DefaultConfig()
	}

	c := &Client{
		conf:     conf,
		registry: command.DefaultRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if !c.timeoutSet {
		timeout, err := conf.Timeout()
		if err != nil {
			return nil, err
		}

		c.timeout = timeout
	}

	if c.runner == nil {
		grace, err := conf.KillGrace()
		if err != nil {
			return nil, err
		}

		c.runner = subprocess.NewExecutor(
			subprocess.WithBinaryPath(command.BinaryLXC, conf.Binaries.Path(command.BinaryLXC)),
			subprocess.WithBinaryPath(command.BinaryLXD, conf.Binaries.Path(command.BinaryLXD)),
			subprocess.WithKillGrace(grace),
			subprocess.WithLogger(c.logger),
		)
	}

	if c.registry == nil {
		return nil, fmt.Errorf("No command registry")
	}

	return c, nil
}

func (c *Client) log() logger.Logger {
	if c.logger != nil {
		return c.logger
	}

	return logger.Log
}

// Registry returns the command registry of the client.
func (c *Client) Registry() *command.Registry {
	return c.registry
}

// DefaultRemote returns the remote unqualified addresses are placed in.
func (c *Client) DefaultRemote() string {
	c.confMu.RLock()
	defer c.confMu.RUnlock()

	return c.conf.DefaultRemote
}

func (c *Client) validateRemote(name string) error {
	c.confMu.RLock()
	defer c.confMu.RUnlock()

	return c.conf.ValidateRemote(name)
}
