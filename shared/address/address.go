package address

import (
	"errors"
	"fmt"
	"strings"
)

// LocalRemote is the name of the scope addressing the local daemon.
const LocalRemote = "local"

// ImagesRemote is the remote image sources are fetched from when none is given.
const ImagesRemote = "images"

// ErrInvalidRemoteName is returned when a remote name is empty or contains ':' or '/'.
var ErrInvalidRemoteName = errors.New("Invalid remote name")

// ErrEmptyResource is returned when a resource name is empty.
var ErrEmptyResource = errors.New("Resource name cannot be empty")

// Error describes a failure to resolve an address.
type Error struct {
	Remote   string
	Resource string
	Err      error
}

// Error returns the error string.
func (e *Error) Error() string {
	if errors.Is(e.Err, ErrInvalidRemoteName) {
		return fmt.Sprintf("%v %q", e.Err, e.Remote)
	}

	return fmt.Sprintf("Failed to resolve %q: %v", e.Resource, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Scope is either the local daemon or a named remote.
// The zero value is the local scope.
type Scope struct {
	remote string
}

// LocalScope returns the scope of the local daemon.
func LocalScope() Scope {
	return Scope{}
}

// RemoteScope returns the scope of the named remote.
// The name "local" yields the local scope.
func RemoteScope(name string) (Scope, error) {
	err := ValidateRemoteName(name)
	if err != nil {
		return Scope{}, &Error{Remote: name, Err: err}
	}

	if name == LocalRemote {
		return LocalScope(), nil
	}

	return Scope{remote: name}, nil
}

// IsLocal returns true for the local scope.
func (s Scope) IsLocal() bool {
	return s.remote == ""
}

// Name returns the remote name, "local" for the local scope.
func (s Scope) Name() string {
	if s.IsLocal() {
		return LocalRemote
	}

	return s.remote
}

// String renders the scope as a bare "<remote>:" token.
func (s Scope) String() string {
	return s.Name() + ":"
}

// Address is a resource qualified by its scope, optionally followed by a sub-resource such as a snapshot.
type Address struct {
	Scope       Scope
	Resource    string
	SubResource string
}

// Render returns the "<remote>:<resource>[/<sub>]" form understood by lxc.
func (a Address) Render() string {
	out := a.Scope.String() + a.Resource
	if a.SubResource != "" {
		out += "/" + a.SubResource
	}

	return out
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Render()
}

// HasSubResource returns true when the address points below its resource.
func (a Address) HasSubResource() bool {
	return a.SubResource != ""
}

// WithScope returns a copy of the address in another scope.
func (a Address) WithScope(scope Scope) Address {
	a.Scope = scope
	return a
}

// ValidateRemoteName checks that name can be used as a remote.
func ValidateRemoteName(name string) error {
	if name == "" || strings.ContainsAny(name, ":/") {
		return ErrInvalidRemoteName
	}

	return nil
}

// Resolve builds an address from an optional remote and a resource name.
// A nil remote, or the "local" remote, resolves to the local scope.
func Resolve(remote *string, resource string) (Address, error) {
	scope := LocalScope()
	if remote != nil {
		var err error

		scope, err = RemoteScope(*remote)
		if err != nil {
			return Address{}, &Error{Remote: *remote, Resource: resource, Err: ErrInvalidRemoteName}
		}
	}

	if resource == "" {
		return Address{}, &Error{Remote: scope.Name(), Err: ErrEmptyResource}
	}

	return Address{Scope: scope, Resource: resource}, nil
}

// ResolveLocal builds an address for a resource of the local daemon.
func ResolveLocal(resource string) (Address, error) {
	return Resolve(nil, resource)
}

// SplitRemote separates an explicit "<remote>:" prefix from raw.
// A colon that follows a '/' belongs to the sub-resource and is not a remote separator.
func SplitRemote(raw string) (remote string, rest string, ok bool) {
	result := strings.SplitN(raw, ":", 2)
	if len(result) == 2 && !strings.Contains(result[0], "/") {
		return result[0], result[1], true
	}

	return "", raw, false
}

// Parse splits raw text of the form "[<remote>:]<resource>[/<sub>]".
// Text without a remote is placed in defaultRemote.
func Parse(raw string, defaultRemote string) (Address, error) {
	remote, name, explicit := SplitRemote(raw)
	if !explicit {
		remote = defaultRemote
	}

	resource, sub, _ := strings.Cut(name, "/")

	var remotePtr *string
	if remote != "" || explicit {
		remotePtr = &remote
	}

	addr, err := Resolve(remotePtr, resource)
	if err != nil {
		return Address{}, err
	}

	addr.SubResource = sub

	return addr, nil
}

// ParseScope parses "<remote>" or "<remote>:" into a Scope.
func ParseScope(raw string) (Scope, error) {
	return RemoteScope(strings.TrimSuffix(raw, ":"))
}
