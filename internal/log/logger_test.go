package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func records(buf *bufferCloser) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		wantLevel []string
	}{
		{name: "debug keeps everything", minLevel: LevelDebug, wantLevel: []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{name: "info drops debug", minLevel: LevelInfo, wantLevel: []string{"INFO", "WARN", "ERROR"}},
		{name: "warn", minLevel: LevelWarn, wantLevel: []string{"WARN", "ERROR"}},
		{name: "error only", minLevel: LevelError, wantLevel: []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bufferCloser{}
			l := NewWithWriter(buf, tt.minLevel)

			l.Debug("resolved %q", "echo")
			l.Info("dispatched %s", "echo")
			l.Warn("slow line")
			l.Error("handler failed: %v", os.ErrClosed)

			lines := records(buf)
			require.Len(t, lines, len(tt.wantLevel))
			for i, level := range tt.wantLevel {
				require.Contains(t, lines[i], "level="+level)
			}
		})
	}
}

func TestLogger_TextRecord(t *testing.T) {
	buf := &bufferCloser{}
	l := NewWithWriter(buf, LevelInfo)

	l.Info("console: ran %q", "add 1 to x")

	lines := records(buf)
	require.Len(t, lines, 1)
	require.True(t, strings.HasPrefix(lines[0], "time="))
	require.Contains(t, lines[0], `msg="console: ran \"add 1 to x\""`)
}

func TestLogger_SetEnabled(t *testing.T) {
	buf := &bufferCloser{}
	l := NewWithWriter(buf, LevelDebug)

	l.SetEnabled(false)
	l.Error("hidden")
	require.Empty(t, buf.String())

	l.SetEnabled(true)
	l.Error("shown")
	require.Contains(t, buf.String(), "msg=shown")
}

func TestLogger_Writer(t *testing.T) {
	buf := &bufferCloser{}
	l := NewWithWriter(buf, LevelDebug)

	n, err := l.Writer(LevelWarn).Write([]byte("pager exited\n"))
	require.NoError(t, err)
	require.Equal(t, len("pager exited\n"), n)

	lines := records(buf)
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "level=WARN")
	require.Contains(t, lines[0], `msg="pager exited"`)
}

func TestLogger_Close(t *testing.T) {
	buf := &bufferCloser{}
	l := NewWithWriter(buf, LevelWarn)

	require.NoError(t, l.Close())
	require.True(t, buf.closed)
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger

	require.NotPanics(t, func() {
		l.Info("ignored")
		l.SetEnabled(false)
	})
	require.NoError(t, l.Close())
	require.Nil(t, l.Slog())
}

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "verbs.log")

	l, err := New(path, LevelInfo)
	require.NoError(t, err)
	l.Info("first")
	require.NoError(t, l.Close())

	l, err = New(path, LevelInfo)
	require.NoError(t, err)
	l.Info("second")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=first")
	require.Contains(t, string(data), "msg=second")

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNew_FixesPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.log")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	l, err := New(path, LevelInfo)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestNew_DirectoryIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := New(filepath.Join(blocker, "verbs.log"), LevelInfo)
	require.ErrorContains(t, err, "create log directory")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "Warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "verbose", want: LevelWarn},
		{in: "", want: LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseLevel(tt.in)
			require.Equal(t, tt.want, got)
			require.NotEqual(t, "UNKNOWN", got.String())
		})
	}
}

func TestGlobal_NoLogger(t *testing.T) {
	if current() != nil {
		t.Skip("global logger already initialised")
	}

	require.NotPanics(t, func() {
		Debug("a")
		Info("b")
		Warn("c")
		Error("d")
	})
	require.NoError(t, Close())
	require.Nil(t, GetLogger())
}

func TestNopLogger(t *testing.T) {
	var l NopLogger
	require.NotPanics(t, func() {
		l.Debug("a")
		l.Info("b")
		l.Warn("c")
		l.Error("d")
	})
	require.NoError(t, l.Close())
}
