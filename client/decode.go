package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/canonical/lxd-driver/shared/api"
	"github.com/canonical/lxd-driver/shared/command"
	"github.com/canonical/lxd-driver/shared/resource"
	"github.com/canonical/lxd-driver/shared/subprocess"
	"github.com/canonical/lxd-driver/shared/version"
)

// Format tells how the output of a command was decoded.
type Format string

// Decoded output formats.
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatVersion Format = "version"
	FormatValue   Format = "value"
	FormatText    Format = "text"
)

// ErrMalformedOutput is returned when structured output can't be decoded.
var ErrMalformedOutput = errors.New("Malformed command output")

// DecodeError reports output that couldn't be decoded for an entry.
type DecodeError struct {
	Kind   resource.Kind
	Action resource.Action
	Err    error
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to decode output of %s %s: %v", e.Kind, e.Action, e.Err)
}

// Unwrap returns ErrMalformedOutput and the underlying parser error.
func (e *DecodeError) Unwrap() []error {
	return []error{ErrMalformedOutput, e.Err}
}

// Decoded is the output of a command in its decoded form.
//
// Value holds a typed slice for JSON lists, a typed struct (or map) for YAML documents, a *version.DottedVersion
// for the daemon version and a string for configuration values. Text always holds the raw output.
type Decoded struct {
	Kind   resource.Kind
	Action resource.Action
	Format Format
	Value  any
	Text   string
}

type decoder func(data []byte) (any, error)

func decodeJSON[T any](data []byte) (any, error) {
	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, err
	}

	return value, nil
}

func decodeYAML[T any](data []byte) (any, error) {
	var value T

	err := yaml.Unmarshal(data, &value)
	if err != nil {
		return nil, err
	}

	return value, nil
}

var listDecoders = map[resource.Kind]decoder{
	resource.KindContainer:         decodeJSON[[]api.Instance],
	resource.KindImage:             decodeJSON[[]api.Image],
	resource.KindImageAlias:        decodeJSON[[]api.ImageAliasesEntry],
	resource.KindStorage:           decodeJSON[[]api.StoragePool],
	resource.KindVolume:            decodeJSON[[]api.StorageVolume],
	resource.KindProfile:           decodeJSON[[]api.Profile],
	resource.KindNetwork:           decodeJSON[[]api.Network],
	resource.KindNetworkZone:       decodeJSON[[]api.NetworkZone],
	resource.KindNetworkZoneRecord: decodeJSON[[]api.NetworkZoneRecord],
	resource.KindNetworkForward:    decodeJSON[[]api.NetworkForward],
	resource.KindNetworkLease:      decodeJSON[[]api.NetworkLease],
	resource.KindNetworkACL:        decodeJSON[[]api.NetworkACL],
	resource.KindProject:           decodeJSON[[]api.Project],
	resource.KindOperation:         decodeJSON[[]api.Operation],
	resource.KindTrust:             decodeJSON[[]api.Certificate],
	resource.KindTrustToken:        decodeJSON[[]api.CertificateAddToken],
	resource.KindRemote:            decodeJSON[map[string]api.Remote],
}

var showDecoders = map[resource.Kind]decoder{
	resource.KindContainer:         decodeYAML[api.Instance],
	resource.KindImage:             decodeYAML[api.Image],
	resource.KindStorage:           decodeYAML[api.StoragePool],
	resource.KindVolume:            decodeYAML[api.StorageVolume],
	resource.KindProfile:           decodeYAML[api.Profile],
	resource.KindNetwork:           decodeYAML[api.Network],
	resource.KindNetworkZone:       decodeYAML[api.NetworkZone],
	resource.KindNetworkZoneRecord: decodeYAML[api.NetworkZoneRecord],
	resource.KindNetworkForward:    decodeYAML[api.NetworkForward],
	resource.KindNetworkACL:        decodeYAML[api.NetworkACL],
	resource.KindProject:           decodeYAML[api.Project],
	resource.KindOperation:         decodeYAML[api.Operation],
	resource.KindTrust:             decodeYAML[api.Certificate],
}

// Decode interprets the output of a successful run of entry.
func Decode(entry command.Entry, outcome *subprocess.Outcome) (*Decoded, error) {
	decoded := &Decoded{
		Kind:   entry.Kind,
		Action: entry.Action,
		Format: FormatText,
	}

	if outcome == nil {
		return decoded, nil
	}

	decoded.Text = string(outcome.Stdout)

	fail := func(err error) (*Decoded, error) {
		return nil, &DecodeError{Kind: entry.Kind, Action: entry.Action, Err: err}
	}

	trimmed := bytes.TrimSpace(outcome.Stdout)

	switch {
	case entry.Kind == resource.KindDaemon && entry.Action == resource.ActionVersion:
		v, err := version.Parse(string(trimmed))
		if err != nil {
			return fail(err)
		}

		decoded.Format = FormatVersion
		decoded.Value = v

	case entry.Action == resource.ActionGet:
		decoded.Format = FormatValue
		decoded.Value = strings.TrimSpace(decoded.Text)

	case entry.Output == command.OutputJSON:
		// Anything else was asked for with an explicit non-json format.
		if len(trimmed) == 0 || (trimmed[0] != '[' && trimmed[0] != '{') {
			return decoded, nil
		}

		decode, ok := listDecoders[entry.Kind]
		if !ok {
			decode = decodeJSON[any]
		}

		value, err := decode(trimmed)
		if err != nil {
			return fail(err)
		}

		decoded.Format = FormatJSON
		decoded.Value = value

	case entry.Output == command.OutputYAML:
		decode, ok := showDecoders[entry.Kind]
		if !ok {
			decode = decodeYAML[map[string]any]
		}

		value, err := decode(trimmed)
		if err != nil {
			return fail(err)
		}

		decoded.Format = FormatYAML
		decoded.Value = value
	}

	return decoded, nil
}
