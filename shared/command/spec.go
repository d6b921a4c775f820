package command

import (
	"slices"

	"github.com/kballard/go-shellquote"
)

// Binary is the name of an external control binary.
type Binary string

const (
	// BinaryLXC is the client binary used for resource control.
	BinaryLXC Binary = "lxc"

	// BinaryLXD is the daemon binary used for init, version, shutdown and cluster recovery.
	BinaryLXD Binary = "lxd"
)

// String implements fmt.Stringer.
func (b Binary) String() string {
	return string(b)
}

// Spec is a fully rendered command line. It is immutable once built.
type Spec struct {
	binary Binary
	args   []string
}

// NewSpec returns a Spec for binary with a private copy of args.
func NewSpec(binary Binary, args ...string) Spec {
	return Spec{binary: binary, args: slices.Clone(args)}
}

// Binary returns the binary the command runs.
func (s Spec) Binary() Binary {
	return s.binary
}

// Args returns a copy of the argument vector, without the binary.
func (s Spec) Args() []string {
	return slices.Clone(s.args)
}

// Equal reports whether both specs run the same command line.
func (s Spec) Equal(other Spec) bool {
	return s.binary == other.binary && slices.Equal(s.args, other.args)
}

// String returns the command line quoted for a POSIX shell.
func (s Spec) String() string {
	return shellquote.Join(append([]string{string(s.binary)}, s.args...)...)
}
