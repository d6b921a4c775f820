package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"
)

// ResourcePrinter writes decoded command output.
type ResourcePrinter interface {
	PrintObj(obj any, writer io.Writer) error
}

// Printer formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewPrinter returns the printer of format.
func NewPrinter(format string) (ResourcePrinter, error) {
	switch format {
	case FormatJSON:
		return NewJSONPrinter(), nil
	case FormatYAML:
		return NewYAMLPrinter(), nil
	}

	return nil, fmt.Errorf("Invalid output format %q, must be one of %s, %s", format, FormatJSON, FormatYAML)
}

type jsonPrinter struct{}

// NewJSONPrinter returns a printer of indented JSON.
func NewJSONPrinter() ResourcePrinter {
	return &jsonPrinter{}
}

func (p *jsonPrinter) PrintObj(obj any, writer io.Writer) error {
	data, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = writer.Write(data)
	return err
}

type yamlPrinter struct{}

// NewYAMLPrinter returns a printer of YAML documents. Nil values print nothing.
func NewYAMLPrinter() ResourcePrinter {
	return &yamlPrinter{}
}

func (p *yamlPrinter) PrintObj(obj any, writer io.Writer) error {
	output, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}

	if strings.TrimRight(string(output), "\n") == "null" {
		return nil
	}

	_, err = fmt.Fprint(writer, string(output))
	return err
}
