package logger

import (
	"github.com/sirupsen/logrus"
)

// Ctx is the logging context.
type Ctx logrus.Fields

// Log contains the logger used by all the logging functions.
var Log Logger

// Logger is the main logging interface.
type Logger interface {
	Trace(msg string, ctx ...Ctx)
	Debug(msg string, ctx ...Ctx)
	Info(msg string, ctx ...Ctx)
	Warn(msg string, ctx ...Ctx)
	Error(msg string, ctx ...Ctx)
	AddContext(ctx Ctx) Logger
}

// targetLogger is the part of logrus used by the wrapper. Both *logrus.Logger and *logrus.Entry implement it.
type targetLogger interface {
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	WithFields(fields logrus.Fields) *logrus.Entry
}
