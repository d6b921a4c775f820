package config

import (
	"errors"
)

// ErrUnknownRemote is returned when a remote isn't part of the configuration.
var ErrUnknownRemote = errors.New("Unknown remote")

// ErrStaticRemote is returned when attempting to modify or remove a static remote.
var ErrStaticRemote = errors.New("Static remotes can't be modified")
