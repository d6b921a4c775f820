package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapperContext(t *testing.T) {
	target, hook := test.NewNullLogger()
	target.SetLevel(logrus.DebugLevel)

	l := NewLogrusLogger(target).AddContext(Ctx{"request": "abc"})
	l.Debug("Running command", Ctx{"binary": "lxc"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Running command", entry.Message)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "abc", entry.Data["request"])
	assert.Equal(t, "lxc", entry.Data["binary"])
}

func TestTopLevelUsesLog(t *testing.T) {
	target, hook := test.NewNullLogger()

	old := Log
	Log = NewLogrusLogger(target)
	defer func() { Log = old }()

	Warnf("Retrying %d times", 3)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Retrying 3 times", hook.LastEntry().Message)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	AddContext(Ctx{"kind": "image"}).Error("Failed")
	assert.Equal(t, "image", hook.LastEntry().Data["kind"])
}

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driver.log")

	old := Log
	defer func() { Log = old }()

	require.NoError(t, InitLogger(path, false, true))
	Debug("Hello", Ctx{"answer": 42})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Hello")
	assert.Contains(t, string(content), "answer=42")
}

func TestInitLoggerFiltersLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driver.log")

	old := Log
	defer func() { Log = old }()

	require.NoError(t, InitLogger(path, false, false))
	Info("Hidden")
	Warn("Shown")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "Hidden")
	assert.Contains(t, string(content), "Shown")
}

func TestPretty(t *testing.T) {
	assert.Equal(t, "\n\t{\n\t\t\"a\": 1\n\t}", Pretty(map[string]int{"a": 1}))
}
