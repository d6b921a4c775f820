package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/version"
)

type cmdVersion struct {
	global *cmdGlobal
}

func (c *cmdVersion) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "version"
	cmd.Short = "Show the driver and daemon versions"
	cmd.Long = cli.FormatSection("Description", cmd.Short)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdVersion) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	fmt.Printf("Driver version: %s\n", version.UserAgent)

	server := "unreachable"
	v, err := c.global.client.GetServerVersion(cmd.Context())
	if err == nil {
		server = v.String()
		if !v.AtLeast(version.MinimumLXD) {
			server += fmt.Sprintf(" (unsupported, at least %s is required)", version.MinimumLXD)
		}
	}

	fmt.Printf("Server version: %s\n", server)

	return nil
}
