package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/store"
	"github.com/footprint-tools/verbs/internal/testutil"
	"github.com/footprint-tools/verbs/internal/ui/style"
	"github.com/footprint-tools/verbs/internal/usage"
)

func newSession(t *testing.T, opts ...Option) (*Session, *bytes.Buffer, *store.Store) {
	t.Helper()
	var out bytes.Buffer
	hist := testutil.NewTestStore(t)

	opts = append([]Option{WithOutput(&out), WithHistory(hist), WithID("test")}, opts...)
	s, err := New(opts...)
	require.NoError(t, err)
	return s, &out, hist
}

func TestExecute(t *testing.T) {
	s, out, _ := newSession(t)
	ctx := context.Background()

	code, err := s.Execute(ctx, "set x 2")
	require.NoError(t, err)
	require.Equal(t, 0, code)

	_, err = s.Execute(ctx, "add 40 to x")
	require.NoError(t, err)
	require.Equal(t, "x = 42\n", out.String())
}

func TestExecute_SkipsBlankAndComments(t *testing.T) {
	s, out, hist := newSession(t)

	for _, line := range []string{"", "   ", "# note", "  # indented"} {
		code, err := s.Execute(context.Background(), line)
		require.NoError(t, err)
		require.Equal(t, 0, code)
	}
	require.Empty(t, out.String())

	n, err := hist.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		kind usage.ErrorKind
		code int
	}{
		{name: "unknown command", line: "ehco hi", kind: usage.ErrUnknownCommand, code: 1},
		{name: "bad argument", line: "scale x by 2", kind: usage.ErrInvalidInput, code: 2},
		{name: "trailing input", line: "vars now", kind: usage.ErrInvalidInput, code: 2},
		{name: "handler failure", line: "get missing", kind: usage.ErrCommandFailed, code: 1},
		{name: "handler exit code kept", line: "sum 1 x", kind: usage.ErrCommandFailed, code: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newSession(t)

			code, err := s.Execute(context.Background(), tt.line)

			var ue *usage.Error
			require.ErrorAs(t, err, &ue)
			require.Equal(t, tt.kind, ue.Kind)
			require.Equal(t, tt.code, code)
		})
	}
}

func TestExecute_UnknownCommandSuggests(t *testing.T) {
	s, _, _ := newSession(t)

	_, err := s.Execute(context.Background(), "ehco hi")
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Contains(t, ue.Full(), "echo")
}

func TestExecute_TrimsLine(t *testing.T) {
	s, out, _ := newSession(t)

	for _, line := range []string{"  echo hi", "\techo hi  ", "echo hi\n"} {
		code, err := s.Execute(context.Background(), line)
		require.NoError(t, err, line)
		require.Equal(t, 0, code)
	}
	require.Equal(t, "hi\nhi\nhi\n", out.String())
}

func TestExecute_RecordsHistory(t *testing.T) {
	s, _, hist := newSession(t)
	ctx := context.Background()

	_, _ = s.Execute(ctx, "  set x 1  ")
	_, _ = s.Execute(ctx, "nope")
	_, _ = s.Execute(ctx, "sum 1 y")

	entries, err := hist.List(domain.HistoryFilter{Session: "test"})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Equal(t, "set x 1", entries[0].Line)
	require.Equal(t, "set", entries[0].Command)
	require.False(t, entries[0].Failed())

	require.Equal(t, "", entries[1].Command)
	require.Equal(t, 1, entries[1].ExitCode)
	require.Contains(t, entries[1].Error, "'nope' is not a verbs command")

	require.Equal(t, "sum", entries[2].Command)
	require.Equal(t, 2, entries[2].ExitCode)
}

func TestHistoryCommand_ShowsOwnSession(t *testing.T) {
	s, out, hist := newSession(t)
	testutil.SeedHistory(t, hist, []domain.HistoryEntry{{Session: "other", Line: "echo elsewhere", Command: "echo"}})

	_, err := s.Execute(context.Background(), "echo here")
	require.NoError(t, err)
	out.Reset()

	_, err = s.Execute(context.Background(), "history")
	require.NoError(t, err)
	require.Contains(t, out.String(), "echo here")
	require.NotContains(t, out.String(), "elsewhere")
}

type mutedStyler struct{ style.NopStyler }

func (mutedStyler) Muted(s string) string { return "<muted>" + s + "</muted>" }

func TestHistoryCommand_UsesStyler(t *testing.T) {
	s, out, _ := newSession(t, WithStyler(mutedStyler{}))

	_, err := s.Execute(context.Background(), "echo styled")
	require.NoError(t, err)
	out.Reset()

	_, err = s.Execute(context.Background(), "history")
	require.NoError(t, err)
	require.Contains(t, out.String(), "<muted>")
	require.Contains(t, out.String(), "echo styled")
}

func TestExecuteTo(t *testing.T) {
	s, out, _ := newSession(t)

	var buf bytes.Buffer
	_, err := s.ExecuteTo(context.Background(), "echo captured", &buf)
	require.NoError(t, err)
	require.Equal(t, "captured\n", buf.String())
	require.Empty(t, out.String())

	_, err = s.Execute(context.Background(), "echo back")
	require.NoError(t, err)
	require.Equal(t, "back\n", out.String())
}

func TestErrorPolicy(t *testing.T) {
	// The two-operand form gets further into "add 1 2 3" than the "to" form,
	// which is attempted last.
	tests := []struct {
		name   string
		policy dispatchers.ErrorPolicy
		want   string
	}{
		{name: "furthest", policy: dispatchers.PolicyFurthest, want: "unexpected trailing input"},
		{name: "last attempted", policy: dispatchers.PolicyLastAttempted, want: `expected "to"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newSession(t, WithErrorPolicy(tt.policy))

			code, err := s.Execute(context.Background(), "add 1 2 3")

			var ue *usage.Error
			require.ErrorAs(t, err, &ue)
			require.Equal(t, usage.ErrInvalidInput, ue.Kind)
			require.Equal(t, 2, code)
			require.Contains(t, ue.Message, tt.want)
		})
	}
}

const definitions = `
commands:
  - name: greet
    summary: Say hello
    forms:
      - usage: "<who: word>"
        run: print
        template: "hello {{.who}}, x is $x"
  - name: double
    category: arithmetic
    forms:
      - usage: "<n: decimal>"
        run: dispatch
        template: "add {{.n}} {{.n}}"
  - name: shout
    forms:
      - usage: "<w: word>"
        run: dispatch
        template: "  echo {{.w}}!"
  - name: loop
    forms:
      - usage: ""
        run: dispatch
        template: "loop"
`

func writeDefinitions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefinitions(t *testing.T) {
	s, out, _ := newSession(t)
	require.NoError(t, s.LoadDefinitions(writeDefinitions(t, definitions), false))
	ctx := context.Background()

	_, err := s.Execute(ctx, "set x 7")
	require.NoError(t, err)
	_, err = s.Execute(ctx, "greet ann")
	require.NoError(t, err)
	_, err = s.Execute(ctx, "double 1.5")
	require.NoError(t, err)
	_, err = s.Execute(ctx, "shout hey")
	require.NoError(t, err)
	require.Equal(t, "hello ann, x is 7\n3\nhey!\n", out.String())

	d, ok := s.Registry().Usage("double")
	require.True(t, ok)
	require.Equal(t, dispatchers.CategoryArithmetic, d.Category)
}

func TestLoadDefinitions_AliasDepth(t *testing.T) {
	s, _, _ := newSession(t)
	require.NoError(t, s.LoadDefinitions(writeDefinitions(t, definitions), false))

	_, err := s.Execute(context.Background(), "loop")
	require.ErrorIs(t, err, ErrAliasDepth)
}

func TestLoadDefinitions_Errors(t *testing.T) {
	s, _, _ := newSession(t)

	require.NoError(t, s.LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"), true))

	err := s.LoadDefinitions(filepath.Join(t.TempDir(), "missing.yaml"), false)
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidDefinition, ue.Kind)

	clash := "commands:\n  - name: echo\n    forms:\n      - usage: x\n        run: print\n"
	err = s.LoadDefinitions(writeDefinitions(t, clash), false)
	require.ErrorAs(t, err, &ue)
	require.Contains(t, ue.Message, "already registered")

	partial := "commands:\n  - name: hello\n    forms:\n      - usage: x\n        run: print\n" +
		"  - name: echo\n    forms:\n      - usage: x\n        run: print\n"
	err = s.LoadDefinitions(writeDefinitions(t, partial), false)
	require.ErrorAs(t, err, &ue)
	_, ok := s.Registry().Usage("hello")
	require.False(t, ok, "no command from a rejected file is registered")
}

func TestRunScript(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode int
		wantOut  string
		wantLine int
	}{
		{
			name:    "runs every line",
			script:  "# setup\nset a 1\n\nadd 2 to a\necho done\n",
			wantOut: "a = 3\ndone\n",
		},
		{
			name:    "indented lines",
			script:  "set x 1\n  echo $x\n\tadd 1 to x\n",
			wantOut: "1\nx = 2\n",
		},
		{
			name:     "stops at exit",
			script:   "echo one\nexit 4\necho never\n",
			wantCode: 4,
			wantOut:  "one\n",
		},
		{
			name:     "stops at first error",
			script:   "echo one\nscale x by 2\necho never\n",
			wantCode: 2,
			wantOut:  "one\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out, _ := newSession(t)

			code, err := s.RunScript(context.Background(), strings.NewReader(tt.script))
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantOut, out.String())

			if tt.wantLine == 0 {
				require.NoError(t, err)
				return
			}
			var se *ScriptError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tt.wantLine, se.Line)
		})
	}
}

func TestRunScript_Cancelled(t *testing.T) {
	s, _, _ := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, err := s.RunScript(ctx, strings.NewReader("echo hi\n"))
	require.Equal(t, 1, code)
	require.ErrorIs(t, err, context.Canceled)
}

func TestModel_RunAndRecall(t *testing.T) {
	s, _, _ := newSession(t)
	m := newModel(context.Background(), s)

	msg := m.run("echo from model")()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	require.Equal(t, "from model\n", res.output)
	require.NoError(t, res.err)

	m.recall = []string{"first", "second"}
	m.cursor = 2

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, "second", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	require.Equal(t, "first", m.input.Value())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(model).Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	require.Equal(t, "", m.input.Value())
}

func TestModel_Submit(t *testing.T) {
	s, _, _ := newSession(t)
	m := newModel(context.Background(), s)
	m.input.SetValue("vars")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	require.True(t, m.running)
	require.NotNil(t, cmd)
	require.Equal(t, []string{"vars"}, m.recall)
	require.Equal(t, "", m.input.Value())

	next, _ = m.Update(resultMsg{output: "no variables\n"})
	require.False(t, next.(model).running)
}

func TestModel_QuitsAfterExit(t *testing.T) {
	s, _, _ := newSession(t)
	m := newModel(context.Background(), s)

	res := m.run("exit 2")().(resultMsg)
	_, cmd := m.Update(res)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	code, exited := s.Exited()
	require.True(t, exited)
	require.Equal(t, 2, code)
}

func TestRenderResult(t *testing.T) {
	require.Equal(t, "out", renderResult(resultMsg{output: "out\n"}))
	require.Equal(t, "", renderResult(resultMsg{}))

	ue := usage.UnknownCommand("ehco", "echo")
	got := renderResult(resultMsg{output: "partial\n", err: ue})
	require.Equal(t, "partial\n"+ue.Full(), got)
}
