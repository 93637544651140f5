package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(zapcore.AddSync(&buf), " Warn ")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
}

func TestNewLoggerOff(t *testing.T) {
	for _, level := range []string{"", "off", "OFF"} {
		logger, err := NewLogger(level)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel), "level %q", level)
	}
}

func TestNewLoggerInvalid(t *testing.T) {
	_, err := NewLogger("loud")
	assert.Error(t, err)
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vimfocus.log")
	logger, closeLog, err := NewFileLogger(path, "debug")
	require.NoError(t, err)

	logger.Named("app").Debug("graph built")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph built")
	assert.Contains(t, string(data), "app")

	_, _, err = NewFileLogger(path, "loud")
	assert.Error(t, err)
}
