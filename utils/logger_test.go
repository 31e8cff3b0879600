package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesErrorAndPanicLogs(t *testing.T) {
	dir := t.TempDir()
	prevOut, prevLevel := Log.Out, Log.GetLevel()
	t.Cleanup(func() {
		Log.SetOutput(prevOut)
		Log.SetLevel(prevLevel)
		ErrorLogger, PanicLogger = nil, nil
	})

	require.NoError(t, InitLogger(dir, "debug"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	LogError(errors.New("boom"), "favorites")
	func() {
		defer func() {
			LogPanic(recover(), "HTTP Request")
		}()
		panic("kaboom")
	}()

	errorsLog, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errorsLog), "boom")
	assert.Contains(t, string(errorsLog), `"context":"favorites"`)

	panicsLog, err := os.ReadFile(filepath.Join(dir, "panics.log"))
	require.NoError(t, err)
	assert.Contains(t, string(panicsLog), "kaboom")
}
