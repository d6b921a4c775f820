package logger

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	lWriter "github.com/sirupsen/logrus/hooks/writer"
	"golang.org/x/term"
)

// Setup a basic empty logger on init.
func init() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	Log = newWrapper(logger)
}

// InitLogger intializes a full logging instance writing to stderr and, optionally, to filepath.
func InitLogger(filepath string, verbose bool, debug bool) error {
	logger, err := newLogrusLogger(filepath, verbose, debug)
	if err != nil {
		return err
	}

	Log = newWrapper(logger)

	return nil
}

func newLogrusLogger(filepath string, verbose bool, debug bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.Level = logrus.DebugLevel
	logger.SetOutput(io.Discard)

	// Setup the formatter.
	isTerminal := term.IsTerminal(int(os.Stderr.Fd()))
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true, ForceColors: isTerminal}

	// Setup log level.
	levels := []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
	if debug {
		levels = append(levels, logrus.InfoLevel, logrus.DebugLevel)
	} else if verbose {
		levels = append(levels, logrus.InfoLevel)
	}

	// Setup writers.
	var stderr io.Writer = os.Stderr
	if isTerminal {
		stderr = colorable.NewColorableStderr()
	}

	writers := []io.Writer{stderr}

	if filepath != "" {
		f, err := os.OpenFile(filepath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		if err != nil {
			return nil, err
		}

		writers = append(writers, f)
	}

	logger.AddHook(&lWriter.Hook{
		Writer:    io.MultiWriter(writers...),
		LogLevels: levels,
	})

	return logger, nil
}
