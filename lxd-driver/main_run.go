package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	printers "github.com/canonical/lxd-driver/lxc/util"
	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/logger"
	"github.com/canonical/lxd-driver/shared/resource"
)

type cmdRun struct {
	global *cmdGlobal

	flagOutput string
}

func (c *cmdRun) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "run <kind> <action> [<key>=<value>...]"
	cmd.Short = "Run an operation"
	cmd.Long = cli.FormatSection("Description", `Run an operation

The operation is named by its kind and action, or by an alias from the
configuration. Parameters are passed as key=value pairs. Switches take true or
false.`)
	cmd.Example = cli.FormatSection("", `lxd-driver run container list scope=lxd01
    List the instances of the lxd01 remote

lxd-driver run container launch image=ubuntu/24.04 instance=c1 ephemeral=true
    Launch an ephemeral container from the images remote

lxd-driver run rm instance=lxd01:c1 force=true
    Delete an instance through the "rm" alias`)
	cmd.RunE = c.run

	cmd.Flags().StringVarP(&c.flagOutput, "output", "o", "", "Print the decoded output as json or yaml instead of the raw output"+"``")

	return cmd
}

func (c *cmdRun) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 1, -1)
	if exit {
		return err
	}

	kind, action, params, err := c.global.parseOperation(args)
	if err != nil {
		return err
	}

	if c.global.flagDryRun {
		spec, err := c.global.client.Build(kind, action, params)
		if err != nil {
			return err
		}

		fmt.Println(spec.String())
		return nil
	}

	res, err := c.global.client.Run(cmd.Context(), kind, action, params)
	if err != nil {
		return err
	}

	if c.global.flagDebug && res.Decoded.Value != nil {
		logger.Debug("Decoded output", logger.Ctx{"format": res.Decoded.Format, "value": logger.Pretty(res.Decoded.Value)})
	}

	// Keep the remotes of the configuration in line with lxc.
	if changesRemotes(kind, action) {
		err = c.global.saveConfig()
		if err != nil {
			return err
		}
	}

	if c.flagOutput != "" && res.Decoded.Value != nil {
		printer, err := printers.NewPrinter(c.flagOutput)
		if err != nil {
			return err
		}

		return printer.PrintObj(res.Decoded.Value, os.Stdout)
	}

	fmt.Print(res.Decoded.Text)

	return nil
}

type cmdRender struct {
	global *cmdGlobal
}

func (c *cmdRender) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "render <kind> <action> [<key>=<value>...]"
	cmd.Short = "Print the command line of an operation"
	cmd.Long = cli.FormatSection("Description", cmd.Short)
	cmd.RunE = c.run

	return cmd
}

func (c *cmdRender) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 1, -1)
	if exit {
		return err
	}

	kind, action, params, err := c.global.parseOperation(args)
	if err != nil {
		return err
	}

	spec, err := c.global.client.Build(kind, action, params)
	if err != nil {
		return err
	}

	fmt.Println(spec.String())

	return nil
}

// parseOperation resolves "<kind> <action>" or an alias, followed by key=value parameters.
func (c *cmdGlobal) parseOperation(args []string) (resource.Kind, resource.Action, command.Params, error) {
	var kind resource.Kind
	var action resource.Action
	var rest []string

	_, err := resource.ParseKind(args[0])
	if err == nil {
		if len(args) < 2 {
			return "", "", nil, fmt.Errorf("Missing action for kind %q", args[0])
		}

		kind = resource.Kind(args[0])

		action, err = resource.ParseAction(args[1])
		if err != nil {
			return "", "", nil, err
		}

		rest = args[2:]
	} else {
		kind, action, err = c.conf.ResolveAlias(args[0])
		if err != nil {
			return "", "", nil, fmt.Errorf("%q is neither a kind nor an alias", args[0])
		}

		rest = args[1:]
	}

	entry, ok := c.client.Registry().Lookup(kind, action)
	if !ok {
		return "", "", nil, fmt.Errorf("%w: %s %s", command.ErrUnsupportedAction, kind, action)
	}

	params, err := parseParams(entry, rest)
	if err != nil {
		return "", "", nil, err
	}

	return kind, action, params, nil
}

// parseParams turns key=value arguments into parameters, switches being parsed as booleans.
func parseParams(entry command.Entry, args []string) (command.Params, error) {
	params := command.Params{}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("Invalid parameter %q, expected <key>=<value>", arg)
		}

		_, exists := params[key]
		if exists {
			return nil, fmt.Errorf("Parameter %q given more than once", key)
		}

		p, ok := entry.Param(key)
		if ok && p.Type == command.ParamSwitch {
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return nil, fmt.Errorf("Invalid value %q for switch %q", value, key)
			}

			params[key] = enabled
			continue
		}

		params[key] = value
	}

	return params, nil
}

// changesRemotes returns true for the operations the client mirrors into the configuration's remotes.
func changesRemotes(kind resource.Kind, action resource.Action) bool {
	return kind == resource.KindRemote && action != resource.ActionList && action != resource.ActionGet
}
