// Package console runs lines against a registry of built-in and
// user-defined commands, either from a script or interactively.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/footprint-tools/verbs/internal/actions/builtins"
	"github.com/footprint-tools/verbs/internal/actions/history"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/format"
	"github.com/footprint-tools/verbs/internal/log"
	"github.com/footprint-tools/verbs/internal/ui/style"
	"github.com/footprint-tools/verbs/internal/usage"
)

const defaultHistoryLimit = 20

// Session is one console run: its variables, its commands and the output
// they write to. Lines execute one at a time.
type Session struct {
	ID     string
	Prompt string

	registry *dispatchers.Registry
	vars     *builtins.Vars
	history  domain.HistoryStore
	logger   domain.Logger
	styler   domain.Styler

	historyLimit int
	policy       dispatchers.ErrorPolicy

	runMu sync.Mutex
	out   io.Writer

	exited   bool
	exitCode int
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where command output goes. The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithHistory records every line in h and backs the history command.
func WithHistory(h domain.HistoryStore) Option {
	return func(s *Session) {
		s.history = h
	}
}

// WithHistoryLimit sets how many entries `history` shows by default.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		s.historyLimit = n
	}
}

// WithLogger sets the session logger.
func WithLogger(l domain.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithStyler sets the styler the history command renders with.
func WithStyler(st domain.Styler) Option {
	return func(s *Session) {
		s.styler = st
	}
}

// WithErrorPolicy selects which failing form is reported.
func WithErrorPolicy(p dispatchers.ErrorPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithPrompt sets the interactive prompt.
func WithPrompt(p string) Option {
	return func(s *Session) {
		s.Prompt = p
	}
}

// WithID sets the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) {
		s.ID = id
	}
}

// New returns a session with the built-in commands registered.
func New(opts ...Option) (*Session, error) {
	s := &Session{
		ID:           uuid.NewString(),
		Prompt:       "> ",
		vars:         builtins.NewVars(),
		logger:       log.NopLogger{},
		styler:       style.NopStyler{},
		historyLimit: defaultHistoryLimit,
		out:          os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.registry = dispatchers.NewRegistry(dispatchers.WithErrorPolicy(s.policy))
	for _, spec := range builtins.Commands(s.builtinDeps()) {
		if err := s.registry.Register(spec); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("console: session %s started", s.ID)
	return s, nil
}

func (s *Session) builtinDeps() builtins.Deps {
	return builtins.Deps{
		Vars:     s.vars,
		Printf:   s.printf,
		Sleep:    builtins.Sleep,
		Overview: func() string { return dispatchers.RenderOverview("", s.registry.Commands()) },
		Describe: s.describe,
		History: history.Deps{
			Store:        s.history,
			Session:      s.ID,
			Styler:       s.styler,
			DefaultLimit: func() int { return s.historyLimit },
			Layout:       format.Current,
			Output:       func(text string) { _, _ = io.WriteString(s.out, text) },
			Printf:       s.printf,
		},
		Exit: func(code int) {
			s.exited = true
			s.exitCode = code
		},
	}
}

func (s *Session) printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s.out, format, args...)
}

func (s *Session) describe(name string) (string, bool) {
	d, ok := s.registry.Usage(name)
	if !ok {
		return "", false
	}
	return dispatchers.RenderCommand(d), true
}

// Registry exposes the session's commands, e.g. for help output.
func (s *Session) Registry() *dispatchers.Registry {
	return s.registry
}

// Vars returns the session variables.
func (s *Session) Vars() *builtins.Vars {
	return s.vars
}

// Exited reports whether an exit command ran, and its code.
func (s *Session) Exited() (int, bool) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.exitCode, s.exited
}

// Execute runs one line with surrounding whitespace removed. Blank lines
// and # comments do nothing.
//
// The returned error, if any, is a *usage.Error; the exit code is the
// handler's own when it set one, otherwise the error's.
func (s *Session) Execute(ctx context.Context, line string) (int, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.executeLocked(ctx, line, s.out)
}

// ExecuteTo is like Execute but writes the line's output to w.
func (s *Session) ExecuteTo(ctx context.Context, line string, w io.Writer) (int, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	return s.executeLocked(ctx, line, w)
}

func (s *Session) executeLocked(ctx context.Context, line string, w io.Writer) (int, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return 0, nil
	}

	prev := s.out
	s.out = w
	defer func() { s.out = prev }()

	command, code, err := s.dispatch(ctx, trimmed)
	s.record(trimmed, command, code, err)
	return code, err
}

// dispatch resolves and runs line, turning failures into usage errors.
func (s *Session) dispatch(ctx context.Context, line string) (string, int, error) {
	res, err := s.registry.Resolve(line)
	if err != nil {
		ue := usage.FromError(err, s.registry.Names()...)
		s.logger.Info("console: rejected %q: %s", line, ue.Message)
		return "", ue.GetExitCode(), ue
	}

	code, err := res.Execute(ctx)
	if err != nil {
		ue := usage.FromError(err)
		if code == 0 {
			code = ue.GetExitCode()
		}
		s.logger.Warn("console: %s failed (exit %d): %v", res.Command, code, err)
		return res.Command, code, ue
	}

	s.logger.Debug("console: %s form %d exit %d", res.Command, res.Form, code)
	return res.Command, code, nil
}

func (s *Session) record(line, command string, code int, err error) {
	if s.history == nil {
		return
	}

	entry := domain.HistoryEntry{
		Session:  s.ID,
		Line:     line,
		Command:  command,
		ExitCode: code,
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		entry.Error = ue.Message
	} else if err != nil {
		entry.Error = err.Error()
	}

	if _, rerr := s.history.Record(entry); rerr != nil {
		s.logger.Warn("console: record history: %v", rerr)
	}
}
