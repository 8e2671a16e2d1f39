package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobals puts the global logger back after a test swaps it
func restoreGlobals(t *testing.T) {
	t.Helper()
	lvl, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(lvl)
		log.Logger = logger
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{" INFO ", zerolog.InfoLevel},
		{"trace", zerolog.TraceLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupDefaultsToStateFile(t *testing.T) {
	restoreGlobals(t)
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	closer, err := Setup(Options{Level: "info"})
	require.NoError(t, err)

	l := Component("test")
	l.Info().Msg("hello")
	require.NoError(t, closer.Close())

	path := filepath.Join(dir, AppName, AppName+".log")
	assert.Equal(t, path, DefaultLogFile())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetupWriterOnly(t *testing.T) {
	restoreGlobals(t)
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var buf bytes.Buffer
	closer, err := Setup(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)
	defer closer.Close()

	l := Component("render")
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
	_, statErr := os.Stat(filepath.Join(dir, AppName))
	assert.True(t, os.IsNotExist(statErr), "no default file when a writer is given")
}

func TestSetupExplicitFile(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "nested", "out.log")

	closer, err := Setup(Options{Level: "debug", File: path})
	require.NoError(t, err)
	l := Component("session")
	l.Debug().Msg("frame")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"caller"`)
}

func TestSetupRejectsBadLevel(t *testing.T) {
	restoreGlobals(t)
	closer, err := Setup(Options{Level: "chatty"})
	require.Error(t, err)
	assert.NotNil(t, closer)
}
