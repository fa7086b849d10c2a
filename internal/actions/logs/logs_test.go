package logs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

type mockFileInfo struct {
	os.FileInfo
	size int64
}

func (m *mockFileInfo) Size() int64 { return m.size }

type printer struct {
	lines []string
}

func (p *printer) Println(a ...any) (int, error) {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = v.(string)
	}
	p.lines = append(p.lines, strings.Join(parts, " "))
	return 0, nil
}

func fileDeps(t *testing.T, content string) (Deps, *printer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "verbs.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	p := &printer{}
	deps := DefaultDeps()
	deps.LogFilePath = func() string { return path }
	deps.Styler = style.NopStyler{}
	deps.Println = p.Println
	deps.PollInterval = 5 * time.Millisecond
	return deps, p
}

func limitArgs(n uint64) *arguments.Store {
	s := arguments.NewStore()
	s.Set("limit", arguments.UintValue(n))
	return s
}

func TestView_FileNotExists(t *testing.T) {
	p := &printer{}
	deps := Deps{
		LogFilePath: func() string { return "/tmp/nonexistent.log" },
		Styler:      style.NopStyler{},
		Stat:        func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
		Println:     p.Println,
	}

	require.NoError(t, view(context.Background(), arguments.NewStore(), deps))
	require.Len(t, p.lines, 1)
	require.Contains(t, p.lines[0], "No log file found")
}

func TestView_StatError(t *testing.T) {
	deps := Deps{
		LogFilePath: func() string { return "/tmp/test.log" },
		Styler:      style.NopStyler{},
		Stat:        func(string) (os.FileInfo, error) { return nil, errors.New("stat error") },
	}

	err := view(context.Background(), arguments.NewStore(), deps)
	require.ErrorContains(t, err, "stat log file")
}

func TestView_EmptyFile(t *testing.T) {
	p := &printer{}
	deps := Deps{
		LogFilePath: func() string { return "/tmp/test.log" },
		Styler:      style.NopStyler{},
		Stat:        func(string) (os.FileInfo, error) { return &mockFileInfo{size: 0}, nil },
		Println:     p.Println,
	}

	require.NoError(t, view(context.Background(), arguments.NewStore(), deps))
	require.Equal(t, []string{"Log file is empty"}, p.lines)
}

func TestView_Limit(t *testing.T) {
	content := "time=t1 level=INFO msg=one\n" +
		"time=t2 level=WARN msg=two\n" +
		"time=t3 level=ERROR msg=three\n"

	tests := []struct {
		name string
		args *arguments.Store
		want []string
	}{
		{
			name: "default shows everything",
			args: arguments.NewStore(),
			want: []string{"time=t1 level=INFO msg=one", "time=t2 level=WARN msg=two", "time=t3 level=ERROR msg=three"},
		},
		{
			name: "limit keeps the newest lines",
			args: limitArgs(2),
			want: []string{"time=t2 level=WARN msg=two", "time=t3 level=ERROR msg=three"},
		},
		{
			name: "limit larger than file",
			args: limitArgs(10),
			want: []string{"time=t1 level=INFO msg=one", "time=t2 level=WARN msg=two", "time=t3 level=ERROR msg=three"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, p := fileDeps(t, content)
			require.NoError(t, view(context.Background(), tt.args, deps))
			require.Equal(t, tt.want, p.lines)
		})
	}
}

func TestViewJSON(t *testing.T) {
	deps, p := fileDeps(t, "time=t1 level=INFO msg=\"console: executed\" command=echo exit=0\nplain text\n")

	require.NoError(t, viewJSON(context.Background(), arguments.NewStore(), deps))
	require.Len(t, p.lines, 1)

	var records []Record
	require.NoError(t, json.Unmarshal([]byte(p.lines[0]), &records))
	require.Len(t, records, 2)
	require.Equal(t, "INFO", records[0].Level)
	require.Equal(t, "console: executed", records[0].Message)
	require.Equal(t, map[string]string{"command": "echo", "exit": "0"}, records[0].Attrs)
	require.Equal(t, "plain text", records[1].Raw)
}

func TestClear(t *testing.T) {
	deps, p := fileDeps(t, "time=t1 level=INFO msg=one\n")

	require.NoError(t, clearLog(context.Background(), arguments.NewStore(), deps))
	require.Equal(t, []string{"Log file cleared"}, p.lines)

	data, err := os.ReadFile(deps.LogFilePath())
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestClear_WriteError(t *testing.T) {
	deps := Deps{
		LogFilePath: func() string { return "/tmp/test.log" },
		Styler:      style.NopStyler{},
		WriteFile:   func(string, []byte, os.FileMode) error { return errors.New("read-only") },
	}

	err := clearLog(context.Background(), arguments.NewStore(), deps)
	require.ErrorContains(t, err, "clear log file")
}

func TestTail_StopsOnCancel(t *testing.T) {
	deps, p := fileDeps(t, "time=t1 level=INFO msg=old\n")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tail(ctx, arguments.NewStore(), deps) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("tail did not stop after cancel")
	}

	for _, line := range p.lines {
		require.NotContains(t, line, "msg=old")
	}
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Record
	}{
		{
			name: "quoted message",
			line: `time=2026-01-02T03:04:05Z level=WARN msg="slow command" took=2s`,
			want: Record{
				Time:    "2026-01-02T03:04:05Z",
				Level:   "WARN",
				Message: "slow command",
				Attrs:   map[string]string{"took": "2s"},
			},
		},
		{
			name: "escaped quotes",
			line: `level=ERROR msg="bad \"x\""`,
			want: Record{Level: "ERROR", Message: `bad "x"`},
		},
		{
			name: "not key value",
			line: "panic: boom",
			want: Record{Message: "panic: boom", Raw: "panic: boom"},
		},
		{
			name: "unterminated quote",
			line: `level=INFO msg="open`,
			want: Record{Message: `level=INFO msg="open`, Raw: `level=INFO msg="open`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseRecord(tt.line))
		})
	}
}

// tagStyler marks text with the role it was styled as.
type tagStyler struct{ style.NopStyler }

func (tagStyler) Error(s string) string   { return "[error]" + s }
func (tagStyler) Warning(s string) string { return "[warning]" + s }
func (tagStyler) Info(s string) string    { return "[info]" + s }
func (tagStyler) Muted(s string) string   { return "[muted]" + s }
func (tagStyler) Success(s string) string { return "[success]" + s }

func TestColorizeLogLine(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "time=t level=ERROR msg=x", want: "[error]time=t level=ERROR msg=x"},
		{line: "time=t level=WARN msg=x", want: "[warning]time=t level=WARN msg=x"},
		{line: "time=t level=INFO msg=x", want: "[info]time=t level=INFO msg=x"},
		{line: "time=t level=DEBUG msg=x", want: "[muted]time=t level=DEBUG msg=x"},
		{line: "plain text", want: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, colorizeLogLine(tagStyler{}, tt.line))
		})
	}
}

func TestView_UsesStyler(t *testing.T) {
	deps, p := fileDeps(t, "time=t1 level=WARN msg=one\n")
	deps.Styler = tagStyler{}

	require.NoError(t, View(deps)(context.Background(), arguments.NewStore()))
	require.Equal(t, []string{"[warning]time=t1 level=WARN msg=one"}, p.lines)
}
