// Package client drives LXD through the lxc and lxd command line tools.
//
// # Overview
//
// A Client builds command lines from the registry in shared/command, runs
// them as child processes and decodes what they print. The daemon itself is
// never contacted directly.
//
// # Example - instance creation
//
// This launches an instance on a remote and lists the instances there.
//
//	// Load the driver configuration
//	conf, err := config.LoadConfig(path)
//	if err != nil {
//	  return err
//	}
//
//	c, err := client.New(conf)
//	if err != nil {
//	  return err
//	}
//
//	// Runs "lxc launch images:ubuntu/24.04 lxd01:web"
//	err = c.CreateInstance(ctx, "ubuntu/24.04", "lxd01:web", client.InstanceArgs{})
//	if err != nil {
//	  return err
//	}
//
//	// Runs "lxc list lxd01: --format json"
//	instances, err := c.GetInstances(ctx, "lxd01")
//	if err != nil {
//	  return err
//	}
//
// # Example - arbitrary commands
//
// Any (kind, action) pair of the registry can be run with its parameters.
//
//	res, err := c.Run(ctx, resource.KindSnapshot, resource.ActionCreate, command.Params{
//	  "instance": "web",
//	  "name":     "before-upgrade",
//	})
package client
