package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		l, err := parseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, l, tt.in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)

	assert.NotNil(t, NewOrNop(Config{Level: "loud"}))
}

func TestNewFileJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rawterm.log")
	logger, err := New(FileConfig(path, "debug", false))
	require.NoError(t, err)

	logger.Debug("key", zap.String("key", "ctrl+q"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "key", entry["message"])
	assert.Equal(t, "ctrl+q", entry["key"])
}

func TestNewFileLevelFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rawterm.log")
	logger, err := New(FileConfig(path, "warn", true))
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
	assert.Contains(t, string(data), "WARN")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}
