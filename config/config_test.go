package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/lixenwraith/rawterm/terminal"
)

var envKeys = []string{
	"RAWTERM_HANDLE_RESIZE",
	"RAWTERM_ASYNC",
	"RAWTERM_ENCODING",
	"RAWTERM_POLL_INTERVAL",
	"RAWTERM_COLOR_HELPER",
	"RAWTERM_LOG_LEVEL",
	"RAWTERM_LOG_DEV",
	"RAWTERM_LOG_FILE",
}

// clearEnv unsets RAWTERM_* for the test, restoring them afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
			os.Unsetenv(k)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAWTERM_HANDLE_RESIZE", "false")
	t.Setenv("RAWTERM_ASYNC", "true")
	t.Setenv("RAWTERM_ENCODING", "latin1")
	t.Setenv("RAWTERM_POLL_INTERVAL", "20ms")
	t.Setenv("RAWTERM_COLOR_HELPER", "/usr/bin/tput")
	t.Setenv("RAWTERM_LOG_LEVEL", "debug")
	t.Setenv("RAWTERM_LOG_DEV", "true")
	t.Setenv("RAWTERM_LOG_FILE", "/tmp/rawterm.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{
		HandleResize: false,
		Async:        true,
		Encoding:     "latin1",
		PollInterval: 20 * time.Millisecond,
		ColorHelper:  "/usr/bin/tput",
		LogLevel:     "debug",
		LogDev:       true,
		LogFile:      "/tmp/rawterm.log",
	}, cfg)
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAWTERM_POLL_INTERVAL", "often")

	_, err := Load()
	assert.Error(t, err)
	assert.Equal(t, Default(), LoadOrDefault())
}

func TestResolveEncoding(t *testing.T) {
	enc, err := ResolveEncoding("")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = ResolveEncoding("UTF-8")
	require.NoError(t, err)
	assert.Nil(t, enc)

	enc, err = ResolveEncoding("latin1")
	require.NoError(t, err)
	require.NotNil(t, enc)
	name, err := htmlindex.Name(enc)
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", name)

	_, err = ResolveEncoding("klingon")
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Async = true
	cfg.PollInterval = time.Millisecond
	cfg.Encoding = "koi8-r"
	logger := zap.NewNop()

	opts, err := cfg.Options(logger)
	require.NoError(t, err)
	assert.True(t, opts.HandleResize)
	assert.True(t, opts.Async)
	assert.Equal(t, time.Millisecond, opts.PollInterval)
	assert.Equal(t, terminal.DefaultColorHelper, opts.ColorHelper)
	assert.Same(t, logger, opts.Logger)
	assert.Equal(t, os.Stdin, opts.In)
	assert.NotNil(t, opts.Encoding)

	cfg.Encoding = "nope"
	_, err = cfg.Options(logger)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	cfg := Default()
	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogFile = filepath.Join(t.TempDir(), "demo.log")
	logger, err = cfg.Logger()
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")

	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	assert.Error(t, err)
}
