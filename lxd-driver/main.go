package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lxd-driver/client"
	"github.com/canonical/lxd-driver/lxc/config"
	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/logger"
	"github.com/canonical/lxd-driver/shared/version"
)

type cmdGlobal struct {
	conf     *config.Config
	confPath string
	client   *client.Client

	flagConfig  string
	flagDebug   bool
	flagVerbose bool
	flagTimeout time.Duration
	flagDryRun  bool
	flagVersion bool
	flagHelp    bool
}

func main() {
	app := &cobra.Command{}
	app.Use = "lxd-driver"
	app.Short = "Drive LXD through the lxc and lxd command line tools"
	app.Long = cli.FormatSection("Description",
		`Drive LXD through the lxc and lxd command line tools

Every supported operation is a (kind, action) pair mapped to a single lxc or lxd
invocation. Resources are addressed as [<remote>:]<name>, unqualified names
being placed in the default remote.`)
	app.SilenceUsage = true
	app.CompletionOptions = cobra.CompletionOptions{DisableDefaultCmd: true}

	// Global flags
	globalCmd := cmdGlobal{}
	app.PersistentFlags().StringVar(&globalCmd.flagConfig, "config", "", "Path to the configuration file"+"``")
	app.PersistentFlags().BoolVarP(&globalCmd.flagDebug, "debug", "d", false, "Show all debug messages")
	app.PersistentFlags().BoolVarP(&globalCmd.flagVerbose, "verbose", "v", false, "Show all information messages")
	app.PersistentFlags().DurationVar(&globalCmd.flagTimeout, "timeout", -1, "Timeout of each command, 0 to disable"+"``")
	app.PersistentFlags().BoolVar(&globalCmd.flagDryRun, "dry-run", false, "Print the commands instead of running them")
	app.PersistentFlags().BoolVar(&globalCmd.flagVersion, "version", false, "Print version number")
	app.PersistentFlags().BoolVarP(&globalCmd.flagHelp, "help", "h", false, "Print help")
	app.PersistentPreRunE = globalCmd.PreRun

	// Version handling
	app.SetVersionTemplate("{{.Version}}\n")
	app.Version = version.Version

	// run sub-command
	runCmd := cmdRun{global: &globalCmd}
	app.AddCommand(runCmd.command())

	// render sub-command
	renderCmd := cmdRender{global: &globalCmd}
	app.AddCommand(renderCmd.command())

	// registry sub-command
	registryCmd := cmdRegistry{global: &globalCmd}
	app.AddCommand(registryCmd.command())

	// batch sub-command
	batchCmd := cmdBatch{global: &globalCmd}
	app.AddCommand(batchCmd.command())

	// launch sub-command
	launchCmd := cmdLaunch{global: &globalCmd}
	app.AddCommand(launchCmd.command())

	// remote sub-command
	remoteCmd := cmdRemote{global: &globalCmd}
	app.AddCommand(remoteCmd.command())

	// version sub-command
	versionCmd := cmdVersion{global: &globalCmd}
	app.AddCommand(versionCmd.command())

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// PreRun loads the configuration, sets up logging and connects the client.
func (c *cmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	var err error

	c.confPath = c.flagConfig
	if c.confPath == "" {
		configDir, err := config.DefaultConfigDir()
		if err != nil {
			return err
		}

		c.confPath = filepath.Join(configDir, "config.yml")
	}

	c.conf, err = config.LoadConfig(c.confPath)
	if err != nil {
		return err
	}

	err = logger.InitLogger(c.conf.LogFile(), c.flagVerbose || c.conf.Log.Verbose, c.flagDebug || c.conf.Log.Debug)
	if err != nil {
		return err
	}

	opts := []client.Option{client.WithLogger(logger.Log)}
	if c.flagTimeout >= 0 {
		opts = append(opts, client.WithTimeout(c.flagTimeout))
	}

	c.client, err = client.New(c.conf, opts...)
	if err != nil {
		return err
	}

	return nil
}

// CheckArgs shows the help when the number of arguments is out of range, maxArgs -1 meaning unbounded.
func (c *cmdGlobal) CheckArgs(cmd *cobra.Command, args []string, minArgs int, maxArgs int) (bool, error) {
	if len(args) < minArgs || (maxArgs != -1 && len(args) > maxArgs) {
		_ = cmd.Help()

		if len(args) == 0 {
			return true, nil
		}

		return true, fmt.Errorf("Invalid number of arguments")
	}

	return false, nil
}

// saveConfig writes the configuration back after the client changed its remotes.
func (c *cmdGlobal) saveConfig() error {
	err := c.conf.SaveConfig(c.confPath)
	if err != nil {
		return fmt.Errorf("Failed to save the configuration: %w", err)
	}

	return nil
}
