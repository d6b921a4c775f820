package main

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/spf13/cobra"

	"github.com/canonical/lxd-driver/client"
	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
)

type cmdLaunch struct {
	global *cmdGlobal

	flagProfile   string
	flagEphemeral bool
}

func (c *cmdLaunch) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "launch [<remote>:]<image> [<remote>:][<name>]"
	cmd.Short = "Create and start an instance from an image"
	cmd.Long = cli.FormatSection("Description", `Create and start an instance from an image

Unqualified images come from the images remote. Without a name, or with a bare
"<remote>:", a random name is picked.`)
	cmd.Example = cli.FormatSection("", `lxd-driver launch ubuntu/24.04
    Create and start a container with a random name on the default remote

lxd-driver launch ubuntu/24.04 lxd01:
    Create and start a container with a random name on lxd01

lxd-driver launch ubuntu:24.04 c1 -p default --ephemeral
    Create and start an ephemeral container named c1`)
	cmd.RunE = c.run

	cmd.Flags().StringVarP(&c.flagProfile, "profile", "p", "", "Profile to apply to the new instance"+"``")
	cmd.Flags().BoolVarP(&c.flagEphemeral, "ephemeral", "e", false, "Ephemeral instance")

	return cmd
}

func (c *cmdLaunch) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 1, 2)
	if exit {
		return err
	}

	name := ""
	if len(args) > 1 {
		name = args[1]
	}

	name = instanceName(name)

	instanceArgs := client.InstanceArgs{Profile: c.flagProfile, Ephemeral: c.flagEphemeral}

	if c.global.flagDryRun {
		params := command.Params{"image": args[0], "instance": name, "ephemeral": instanceArgs.Ephemeral}
		if instanceArgs.Profile != "" {
			params["profile"] = instanceArgs.Profile
		}

		spec, err := c.global.client.Build(resource.KindContainer, resource.ActionLaunch, params)
		if err != nil {
			return err
		}

		fmt.Println(spec.String())
		return nil
	}

	err = c.global.client.CreateInstance(cmd.Context(), args[0], name, instanceArgs)
	if err != nil {
		return err
	}

	fmt.Printf("Launched %s\n", name)

	return nil
}

// instanceName fills in a random name when name is empty or only names a remote.
func instanceName(name string) string {
	if name == "" {
		return petname.Generate(2, "-")
	}

	if strings.HasSuffix(name, ":") && !strings.Contains(strings.TrimSuffix(name, ":"), ":") {
		return name + petname.Generate(2, "-")
	}

	return name
}
