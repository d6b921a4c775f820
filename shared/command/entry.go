package command

import (
	"fmt"
	"strings"

	"github.com/canonical/lxd-driver/shared/resource"
)

// Params holds the caller supplied values for an entry, keyed by parameter name.
// Values are strings, address.Address, address.Scope or bool.
type Params map[string]any

// ParamType controls how a parameter value is validated and rendered.
type ParamType int

const (
	// ParamAddress is a "[<remote>:]<resource>[/<sub>]" address.
	ParamAddress ParamType = iota

	// ParamSubAddress is an address which must carry a sub-resource, such as a snapshot or a file path.
	ParamSubAddress

	// ParamScope is a bare "<remote>:" token.
	ParamScope

	// ParamName is a plain object name, without remote or path separators.
	ParamName

	// ParamString is any non-empty value, passed verbatim.
	ParamString

	// ParamRemote is the name of a remote.
	ParamRemote

	// ParamSwitch is a boolean flag rendered only when true.
	ParamSwitch
)

var paramTypeNames = map[ParamType]string{
	ParamAddress:    "address",
	ParamSubAddress: "sub-address",
	ParamScope:      "scope",
	ParamName:       "name",
	ParamString:     "string",
	ParamRemote:     "remote",
	ParamSwitch:     "switch",
}

// String implements fmt.Stringer.
func (t ParamType) String() string {
	name, ok := paramTypeNames[t]
	if !ok {
		return fmt.Sprintf("ParamType(%d)", int(t))
	}

	return name
}

// IsAddress returns true for the types rendered with a scope and a resource.
func (t ParamType) IsAddress() bool {
	return t == ParamAddress || t == ParamSubAddress
}

// ParamSpec declares one parameter of an entry.
type ParamSpec struct {
	Name     string
	Type     ParamType
	Optional bool

	// Default is used when an optional parameter is absent. Without it the parameter is omitted.
	Default string

	// Flag renders the parameter as "<flag> <value>" after all positional arguments.
	Flag string

	// DefaultRemote places unqualified addresses in this remote instead of the builder's default.
	DefaultRemote string

	// InheritFrom places unqualified addresses in the scope of the named address parameter.
	InheritFrom string

	// Validate is called with the resource name or the raw value.
	Validate func(value string) error

	// Example is a valid value used in usage strings and tests.
	Example string
}

// IsFlag returns true when the parameter is rendered after the positional arguments.
func (p ParamSpec) IsFlag() bool {
	return p.Flag != ""
}

func (p ParamSpec) usage() string {
	var out string
	switch p.Type {
	case ParamAddress, ParamSubAddress:
		out = fmt.Sprintf("[<remote>:]<%s>", p.Name)
	case ParamScope:
		out = "<remote>:"
	case ParamSwitch:
		out = p.Flag
	default:
		out = fmt.Sprintf("<%s>", p.Name)
	}

	if p.IsFlag() && p.Type != ParamSwitch {
		out = p.Flag + " " + out
	}

	if p.Optional {
		out = "[" + out + "]"
	}

	return out
}

// Shape describes how many addresses an entry acts upon.
type Shape int

const (
	// ShapeNone entries carry no address.
	ShapeNone Shape = iota

	// ShapeScope entries target a whole remote, such as listings.
	ShapeScope

	// ShapeSingle entries target one address.
	ShapeSingle

	// ShapePair entries relate a source and a destination address.
	ShapePair
)

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeScope:
		return "scope"
	case ShapeSingle:
		return "single"
	case ShapePair:
		return "pair"
	}

	return fmt.Sprintf("Shape(%d)", int(s))
}

// Output is the format an entry produces on stdout.
type Output int

const (
	// OutputText is free-form text.
	OutputText Output = iota

	// OutputJSON is produced by listings when "--format json" is passed.
	OutputJSON

	// OutputYAML is produced by show commands.
	OutputYAML
)

// String implements fmt.Stringer.
func (o Output) String() string {
	switch o {
	case OutputJSON:
		return "json"
	case OutputYAML:
		return "yaml"
	}

	return "text"
}

// Key identifies an entry.
type Key struct {
	Kind   resource.Kind
	Action resource.Action
}

// String returns "<kind> <action>".
func (k Key) String() string {
	return fmt.Sprintf("%s %s", k.Kind, k.Action)
}

// Entry describes how a (kind, action) pair maps onto a command line.
type Entry struct {
	Kind        resource.Kind
	Action      resource.Action
	Binary      Binary
	Command     []string
	Params      []ParamSpec
	Shape       Shape
	Output      Output
	Description string
}

// Key returns the registry key of the entry.
func (e Entry) Key() Key {
	return Key{Kind: e.Kind, Action: e.Action}
}

// Param returns the declared parameter with the given name.
func (e Entry) Param(name string) (ParamSpec, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}

	return ParamSpec{}, false
}

// Usage renders a synopsis such as "lxc storage create [<remote>:]<storage_address> <filesystem>".
func (e Entry) Usage() string {
	parts := []string{string(e.Binary)}
	parts = append(parts, e.Command...)

	for _, p := range e.Params {
		if !p.IsFlag() {
			parts = append(parts, p.usage())
		}
	}

	for _, p := range e.Params {
		if p.IsFlag() {
			parts = append(parts, p.usage())
		}
	}

	return strings.Join(parts, " ")
}

func (e Entry) clone() Entry {
	e.Command = append([]string(nil), e.Command...)
	e.Params = append([]ParamSpec(nil), e.Params...)
	return e
}

// inferShape derives the shape from the declared parameters.
func inferShape(params []ParamSpec) Shape {
	addresses := 0
	scopes := 0
	for _, p := range params {
		if p.Type.IsAddress() {
			addresses++
		} else if p.Type == ParamScope {
			scopes++
		}
	}

	switch {
	case addresses >= 2:
		return ShapePair
	case addresses == 1:
		return ShapeSingle
	case scopes > 0:
		return ShapeScope
	}

	return ShapeNone
}
