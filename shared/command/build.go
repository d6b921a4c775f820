package command

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/canonical/lxd-driver/shared/address"
	"github.com/canonical/lxd-driver/shared/resource"
)

// BuildOption alters how addresses are resolved while building.
type BuildOption func(*buildOptions)

type buildOptions struct {
	defaultRemote  string
	validateRemote func(name string) error
}

// WithDefaultRemote places unqualified addresses in the named remote instead of "local".
func WithDefaultRemote(name string) BuildOption {
	return func(o *buildOptions) {
		if name != "" {
			o.defaultRemote = name
		}
	}
}

// WithRemoteValidator rejects addresses and scopes naming a remote for which fn fails.
func WithRemoteValidator(fn func(name string) error) BuildOption {
	return func(o *buildOptions) {
		o.validateRemote = fn
	}
}

// Build renders the command line for a (kind, action) pair using the default registry.
func Build(kind resource.Kind, action resource.Action, params Params, opts ...BuildOption) (Spec, error) {
	return DefaultRegistry().Build(kind, action, params, opts...)
}

// Build renders the command line for a (kind, action) pair.
func (r *Registry) Build(kind resource.Kind, action resource.Action, params Params, opts ...BuildOption) (Spec, error) {
	entry, ok := r.Lookup(kind, action)
	if !ok {
		return Spec{}, &BuildError{Kind: kind, Action: action, Err: ErrUnsupportedAction}
	}

	return entry.Build(params, opts...)
}

// Build renders the command line of the entry with the given parameters.
//
// Positional parameters are rendered in declaration order, followed by the flags in declaration order.
// Building has no side effects and always yields the same Spec for the same input.
func (e Entry) Build(params Params, opts ...BuildOption) (Spec, error) {
	o := buildOptions{defaultRemote: address.LocalRemote}
	for _, opt := range opts {
		opt(&o)
	}

	fail := func(param string, err error) (Spec, error) {
		return Spec{}, &BuildError{Kind: e.Kind, Action: e.Action, Param: param, Err: err}
	}

	// Report unknown parameters in a stable order.
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		_, ok := e.Param(name)
		if !ok {
			return fail(name, ErrUnexpectedParam)
		}
	}

	for _, p := range e.Params {
		if !p.Optional && params[p.Name] == nil {
			return fail(p.Name, ErrMissingParam)
		}
	}

	scopes := map[string]address.Scope{}
	args := append([]string(nil), e.Command...)
	var flags []string

	for _, p := range e.Params {
		value := params[p.Name]
		if value == nil {
			if p.Default == "" {
				continue
			}

			value = p.Default
		}

		rendered, err := o.render(p, value, scopes)
		if err != nil {
			return fail(p.Name, invalidParam(err))
		}

		if p.IsFlag() {
			flags = append(flags, rendered...)
		} else {
			args = append(args, rendered...)
		}
	}

	return NewSpec(e.Binary, append(args, flags...)...), nil
}

func (o *buildOptions) render(p ParamSpec, value any, scopes map[string]address.Scope) ([]string, error) {
	var rendered string

	switch p.Type {
	case ParamAddress, ParamSubAddress:
		addr, err := o.resolveAddress(p, value, scopes)
		if err != nil {
			return nil, err
		}

		if p.Type == ParamSubAddress && !addr.HasSubResource() {
			return nil, fmt.Errorf("Address %q must include a sub-resource", addr.Render())
		}

		err = o.checkScope(addr.Scope)
		if err != nil {
			return nil, err
		}

		err = validate(p, addr.Resource)
		if err != nil {
			return nil, err
		}

		scopes[p.Name] = addr.Scope
		rendered = addr.Render()

	case ParamScope:
		var scope address.Scope

		switch v := value.(type) {
		case address.Scope:
			scope = v
		case string:
			var err error

			scope, err = address.ParseScope(v)
			if err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("Expected a scope, got %T", value)
		}

		err := o.checkScope(scope)
		if err != nil {
			return nil, err
		}

		rendered = scope.String()

	case ParamSwitch:
		enabled, err := boolValue(value)
		if err != nil {
			return nil, err
		}

		if !enabled {
			return nil, nil
		}

		return []string{p.Flag}, nil

	default:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("Expected a string, got %T", value)
		}

		if s == "" {
			return nil, fmt.Errorf("Value cannot be empty")
		}

		switch p.Type {
		case ParamName:
			if strings.ContainsAny(s, ":/") {
				return nil, fmt.Errorf("Name %q cannot contain ':' or '/'", s)
			}

		case ParamRemote:
			err := address.ValidateRemoteName(s)
			if err != nil {
				return nil, fmt.Errorf("%w %q", err, s)
			}
		}

		err := validate(p, s)
		if err != nil {
			return nil, err
		}

		rendered = s
	}

	if p.IsFlag() {
		return []string{p.Flag, rendered}, nil
	}

	return []string{rendered}, nil
}

func (o *buildOptions) resolveAddress(p ParamSpec, value any, scopes map[string]address.Scope) (address.Address, error) {
	switch v := value.(type) {
	case address.Address:
		if v.Resource == "" {
			return address.Address{}, &address.Error{Remote: v.Scope.Name(), Err: address.ErrEmptyResource}
		}

		return v, nil

	case string:
		_, _, explicit := address.SplitRemote(v)
		if explicit {
			return address.Parse(v, "")
		}

		remote := o.defaultRemote
		if p.DefaultRemote != "" {
			remote = p.DefaultRemote
		}

		if p.InheritFrom != "" {
			scope, ok := scopes[p.InheritFrom]
			if ok {
				remote = scope.Name()
			}
		}

		return address.Parse(v, remote)
	}

	return address.Address{}, fmt.Errorf("Expected an address, got %T", value)
}

func (o *buildOptions) checkScope(scope address.Scope) error {
	if scope.IsLocal() || o.validateRemote == nil {
		return nil
	}

	return o.validateRemote(scope.Name())
}

func validate(p ParamSpec, value string) error {
	if p.Validate == nil {
		return nil
	}

	return p.Validate(value)
}

func boolValue(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("Invalid boolean %q", v)
		}

		return b, nil
	}

	return false, fmt.Errorf("Expected a boolean, got %T", value)
}
