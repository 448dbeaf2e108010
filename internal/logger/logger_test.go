package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/oaktree-lab/shytrace/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	prev := Log
	t.Cleanup(func() { Log = prev })

	var buf bytes.Buffer
	Log = zerolog.New(&buf).Level(level)
	return &buf
}

func TestHelpers(t *testing.T) {
	buf := captureLog(t, zerolog.DebugLevel)

	Debug("matched %d frames", 3)
	Info("plain")
	Error("failed", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"message":"matched 3 frames"`)
	assert.Contains(t, out, `"message":"plain"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestHelpers_LevelFilter(t *testing.T) {
	buf := captureLog(t, zerolog.WarnLevel)

	Debug("hidden")
	Info("hidden")
	Error("shown", errors.New("boom"))

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInit_CreatesDailyLogFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	t.Cleanup(func() { Close() })
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	require.NoError(t, Init("warn", false))
	assert.Equal(t, zerolog.WarnLevel, Log.GetLevel())

	Log.Warn().Msg("written")
	path := filepath.Join(config.GetLogsDir(), logFileName(time.Now()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app":"shytrace"`)
}

func TestInit_BadLevelFallsBackToInfo(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	t.Cleanup(func() { Close() })
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	require.NoError(t, Init("loud", false))
	assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "shytrace-2020-01-01.log")
	fresh := filepath.Join(dir, "shytrace-2020-01-09.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0600))
	}

	now := time.Now()
	require.NoError(t, os.Chtimes(old, now, now.AddDate(0, 0, -30)))
	require.NoError(t, os.Chtimes(other, now, now.AddDate(0, 0, -30)))

	cleanOldLogs(dir, now.AddDate(0, 0, -keepDays))

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}

func TestInit_ClosesPreviousFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })
	t.Cleanup(func() { Close() })
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	require.NoError(t, Init("info", false))
	first := logFile
	require.NotNil(t, first)

	require.NoError(t, Init("info", false))
	assert.NotSame(t, first, logFile)
	_, err := first.WriteString("x")
	assert.ErrorIs(t, err, os.ErrClosed)

	require.NoError(t, Close())
	assert.Nil(t, logFile)
	require.NoError(t, Close())
}
