package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cli "github.com/canonical/lxd-driver/shared/cmd"
)

type cmdRemote struct {
	global *cmdGlobal
}

func (c *cmdRemote) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "remote"
	cmd.Short = "Manage the remotes of the configuration"
	cmd.Long = cli.FormatSection("Description", cmd.Short)

	// Workaround for subcommand usage errors. See: https://github.com/spf13/cobra/issues/706
	cmd.Args = cobra.NoArgs
	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Usage() }

	// List
	remoteListCmd := cmdRemoteList{global: c.global}
	cmd.AddCommand(remoteListCmd.command())

	// Sync
	remoteSyncCmd := cmdRemoteSync{global: c.global}
	cmd.AddCommand(remoteSyncCmd.command())

	return cmd
}

// List.
type cmdRemoteList struct {
	global *cmdGlobal
}

func (c *cmdRemoteList) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "list"
	cmd.Aliases = []string{"ls"}
	cmd.Short = "List the configured remotes"
	cmd.Long = cli.FormatSection("Description", cmd.Short)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteList) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	for _, name := range c.global.conf.RemoteNames() {
		remote := c.global.conf.Remotes[name]

		marker := ""
		if name == c.global.conf.DefaultRemote {
			marker = " (default)"
		}

		fmt.Printf("%s%s\t%s\n", name, marker, remote.Addr)
	}

	return nil
}

// Sync.
type cmdRemoteSync struct {
	global *cmdGlobal
}

func (c *cmdRemoteSync) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "sync"
	cmd.Short = "Import the remotes known to lxc"
	cmd.Long = cli.FormatSection("Description", `Import the remotes known to lxc

Remotes added with "lxc remote add" are copied into the configuration so that
addresses on them can be used.`)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRemoteSync) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	added, err := c.global.client.SyncRemotes(cmd.Context())
	if err != nil {
		return err
	}

	if len(added) == 0 {
		fmt.Println("Remotes already in sync")
		return nil
	}

	for _, name := range added {
		fmt.Printf("Added remote %s\n", name)
	}

	if c.global.flagDryRun {
		return nil
	}

	return c.global.saveConfig()
}
