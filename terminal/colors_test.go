//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHelper installs a shell script standing in for tput
func writeHelper(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helper")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestParseColors(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{"plain", "256\n", 256, false},
		{"padded", "  8 \n", 8, false},
		{"first line only", "16\nignored\n", 16, false},
		{"negative", "-1\n", -1, false},
		{"word", "colors\n", -1, true},
		{"empty", "", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parseColors([]byte(tt.out))
			assert.Equal(t, tt.want, n)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCapabilityQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQueryColorsHelper(t *testing.T) {
	n, err := QueryColors(context.Background(), writeHelper(t, `[ "$1" = colors ] && echo 88`))
	require.NoError(t, err)
	assert.Equal(t, 88, n)
}

func TestQueryColorsHelperFails(t *testing.T) {
	n, err := QueryColors(context.Background(), writeHelper(t, "exit 1"))
	assert.ErrorIs(t, err, ErrCapabilityQuery)
	assert.Equal(t, -1, n)
}

func TestQueryColorsHelperGarbage(t *testing.T) {
	n, err := QueryColors(context.Background(), writeHelper(t, "echo unknown"))
	assert.ErrorIs(t, err, ErrCapabilityQuery)
	assert.Equal(t, -1, n)
}

func TestQueryColorsTerminfoFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-helper")

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	n, err := QueryColors(context.Background(), missing)
	require.NoError(t, err)
	assert.Equal(t, 256, n)

	t.Setenv("TERM", "vt100")
	n, err = QueryColors(context.Background(), missing)
	assert.ErrorIs(t, err, ErrCapabilityQuery)
	assert.Equal(t, -1, n)

	t.Setenv("TERM", "")
	n, err = QueryColors(context.Background(), missing)
	assert.ErrorIs(t, err, ErrCapabilityQuery)
	assert.Equal(t, -1, n)
}
