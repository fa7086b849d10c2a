package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/log"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("VERBS_LOG_LEVEL", "debug")
	t.Setenv("VERBS_HISTORY_ENABLED", "false")

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.Equal(t, log.LevelDebug, opts.LogLevel)
	require.False(t, opts.HistoryEnabled)
	require.Equal(t, "debug", opts.StyleConfig["log_level"])
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.Nil(t, app.History)
	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	require.NoError(t, Close(app))
}

func TestNew_WithHistory(t *testing.T) {
	dir := t.TempDir()

	app, err := New(Options{
		PagerDisabled:  true,
		PagerOverride:  "less",
		LogEnabled:     true,
		LogLevel:       log.LevelInfo,
		LogPath:        filepath.Join(dir, "verbs.log"),
		HistoryEnabled: true,
		HistoryPath:    filepath.Join(dir, "history.db"),
	})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.NotNil(t, app.History)
	require.IsType(t, &log.Logger{}, app.Logger)

	id, err := app.History.Record(domain.HistoryEntry{Session: "s", Line: "echo hi", Command: "echo"})
	require.NoError(t, err)
	require.Positive(t, id)
}

func TestNew_HistoryDisabled(t *testing.T) {
	app, err := New(Options{})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.Nil(t, app.History)
	require.Equal(t, log.NopLogger{}, app.Logger)
}

func TestNew_BadHistoryPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := New(Options{HistoryEnabled: true, HistoryPath: filepath.Join(file, "history.db")})
	require.Error(t, err)
}
