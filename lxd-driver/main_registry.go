package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cli "github.com/canonical/lxd-driver/shared/cmd"
	"github.com/canonical/lxd-driver/shared/command"
)

type cmdRegistry struct {
	global *cmdGlobal

	flagFormat  string
	flagColumns string
	flagKind    string
}

// registryRow is the printable form of a registry entry.
type registryRow struct {
	Kind        string `json:"kind" yaml:"kind"`
	Action      string `json:"action" yaml:"action"`
	Binary      string `json:"binary" yaml:"binary"`
	Shape       string `json:"shape" yaml:"shape"`
	Output      string `json:"output" yaml:"output"`
	Usage       string `json:"usage" yaml:"usage"`
	Description string `json:"description" yaml:"description"`
}

func (c *cmdRegistry) command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "registry"
	cmd.Short = "List the supported operations"
	cmd.Long = cli.FormatSection("Description", `List the supported operations

Column shorthand chars:

    k - Kind
    a - Action
    b - Binary
    s - Shape
    o - Output
    u - Usage
    d - Description`)
	cmd.RunE = c.run

	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", cli.TableFormatTable, `Format (csv|json|table|yaml|compact), use suffix ",noheader" to disable headers and ",header" to enable it if missing, e.g. csv,header`+"``")
	cmd.Flags().StringVarP(&c.flagColumns, "columns", "c", "kau", "Columns"+"``")
	cmd.Flags().StringVar(&c.flagKind, "kind", "", "Only list the operations of this kind"+"``")

	return cmd
}

func (c *cmdRegistry) run(cmd *cobra.Command, args []string) error {
	exit, err := c.global.CheckArgs(cmd, args, 0, 0)
	if exit {
		return err
	}

	return renderRegistry(os.Stdout, c.global.client.Registry(), c.flagFormat, c.flagColumns, c.flagKind)
}

func renderRegistry(w io.Writer, registry *command.Registry, format string, columns string, kind string) error {
	rows := []registryRow{}
	for _, entry := range registry.Entries() {
		if kind != "" && string(entry.Kind) != kind {
			continue
		}

		rows = append(rows, registryRow{
			Kind:        string(entry.Kind),
			Action:      string(entry.Action),
			Binary:      entry.Binary.String(),
			Shape:       entry.Shape.String(),
			Output:      entry.Output.String(),
			Usage:       entry.Usage(),
			Description: entry.Description,
		})
	}

	if kind != "" && len(rows) == 0 {
		return fmt.Errorf("No operations for kind %q", kind)
	}

	field := func(get func(registryRow) string) func(any) (string, error) {
		return func(data any) (string, error) {
			row, ok := data.(registryRow)
			if !ok {
				return "", fmt.Errorf("Unexpected row type %T", data)
			}

			return get(row), nil
		}
	}

	columnMap := map[rune]cli.Column{
		'k': {Header: "KIND", DataFunc: field(func(r registryRow) string { return r.Kind })},
		'a': {Header: "ACTION", DataFunc: field(func(r registryRow) string { return r.Action })},
		'b': {Header: "BINARY", DataFunc: field(func(r registryRow) string { return r.Binary })},
		's': {Header: "SHAPE", DataFunc: field(func(r registryRow) string { return r.Shape })},
		'o': {Header: "OUTPUT", DataFunc: field(func(r registryRow) string { return r.Output })},
		'u': {Header: "USAGE", DataFunc: field(func(r registryRow) string { return r.Usage })},
		'd': {Header: "DESCRIPTION", DataFunc: field(func(r registryRow) string { return r.Description })},
	}

	// Sort by kind then action, when displayed.
	var sortColumns strings.Builder
	for _, r := range "ka" {
		if strings.ContainsRune(columns, r) {
			sortColumns.WriteRune(r)
		}
	}

	return cli.RenderSlice(w, rows, format, columns, sortColumns.String(), columnMap)
}
