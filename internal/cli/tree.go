package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/footprint-tools/verbs/internal/actions"
	cfgactions "github.com/footprint-tools/verbs/internal/actions/config"
	"github.com/footprint-tools/verbs/internal/actions/history"
	"github.com/footprint-tools/verbs/internal/actions/logs"
	"github.com/footprint-tools/verbs/internal/actions/theme"
	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/completions"
	"github.com/footprint-tools/verbs/internal/console"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/forms"
	"github.com/footprint-tools/verbs/internal/usage"
)

const (
	program   = "verbs"
	helpTitle = "usage: verbs <command> [flags]"
)

// Runner holds what the top-level commands act on.
type Runner struct {
	Session *console.Session
	History history.Deps
	Config  cfgactions.Deps
	Theme   theme.Deps
	Logs    logs.Deps

	// Output shows long text, through the pager when appropriate.
	Output func(string)

	// Out receives text meant for other programs, e.g. completion scripts.
	Out io.Writer

	// Stdin is read by `run -`.
	Stdin io.Reader
	Open  func(path string) (io.ReadCloser, error)

	Interactive func(ctx context.Context) (int, error)
}

// BuildTree returns the command-line tree. An empty line shows help.
func BuildTree(r *Runner, policy dispatchers.ErrorPolicy) *dispatchers.Tree {
	tree := dispatchers.NewTree(dispatchers.WithTreeErrorPolicy(policy))
	root := tree.Root()

	showHelp := func(_ context.Context, args *arguments.Store) error {
		return r.help(root, args)
	}
	root.Executes(showHelp)

	completionsFor := func(script bool) func(context.Context, *arguments.Store) error {
		return func(_ context.Context, args *arguments.Store) error {
			return r.completions(root, args, script)
		}
	}

	tree.Register(
		dispatchers.Literal("exec").
			Describe("Run one console line").
			In(dispatchers.CategoryGeneral).
			Then(dispatchers.Argument("line", arguments.Rest()).Runs(forms.HandlerFunc(r.exec))),

		dispatchers.Literal("run").
			Describe("Run a script file, or stdin with -").
			In(dispatchers.CategoryGeneral).
			Then(dispatchers.Argument("file", arguments.Text()).Runs(forms.HandlerFunc(r.run))),

		dispatchers.Literal("console").
			Describe("Start an interactive console").
			In(dispatchers.CategoryGeneral).
			Runs(forms.HandlerFunc(r.console)),

		dispatchers.Literal("commands").
			Describe("List console commands").
			In(dispatchers.CategoryGeneral).
			Executes(r.commands),

		dispatchers.Literal("help").
			Describe("Show help").
			In(dispatchers.CategoryGeneral).
			Executes(showHelp).
			Then(dispatchers.Argument("command", arguments.Word()).Describe("Show help for a command").Executes(showHelp)),

		dispatchers.Literal("completions").
			Describe("Show how to enable shell completions").
			In(dispatchers.CategoryGeneral).
			Executes(completionsFor(false)).
			Then(dispatchers.Argument("shell", arguments.Enum("bash", "zsh", "fish")).
				Executes(completionsFor(false)).
				Then(dispatchers.Literal("script").Describe("Print the completion script").Executes(completionsFor(true)))),

		dispatchers.Literal("history").
			Describe("Show recent console lines").
			In(dispatchers.CategoryHistory).
			Executes(history.List(r.History)).
			Then(
				dispatchers.Literal("clear").Describe("Delete all history").Executes(history.Clear(r.History)),
				dispatchers.Literal("of").Then(
					dispatchers.Argument("command", arguments.Word()).
						Describe("Show lines that ran a command").
						Executes(history.List(r.History)),
				),
				dispatchers.Argument("limit", arguments.Uint(32)).
					Describe("Show the last <limit> lines").
					Executes(history.List(r.History)),
			),

		dispatchers.Literal("config").
			Describe("Manage configuration").
			In(dispatchers.CategoryConfig).
			Then(
				dispatchers.Literal("get").Then(
					dispatchers.Argument("key", arguments.Word()).Describe("Get a config value").Executes(cfgactions.Get(r.Config)),
				),
				dispatchers.Literal("set").Then(
					dispatchers.Argument("key", arguments.Word()).Then(
						dispatchers.Argument("value", arguments.Rest()).Describe("Set a config value").Executes(cfgactions.Set(r.Config)),
					),
				),
				dispatchers.Literal("unset").Then(
					dispatchers.Argument("key", arguments.Word()).Describe("Remove a config value").Executes(cfgactions.Unset(r.Config)),
				),
				dispatchers.Literal("list").Describe("List config values").Executes(cfgactions.List(r.Config)),
				dispatchers.Literal("reset").Describe("Restore the default config").Executes(cfgactions.Reset(r.Config)),
			),

		dispatchers.Literal("theme").
			Describe("List color themes").
			In(dispatchers.CategoryConfig).
			Executes(theme.List(r.Theme)).
			Then(
				dispatchers.Literal("set").Then(
					dispatchers.Argument("name", arguments.Word()).Describe("Set the color theme").Executes(theme.Set(r.Theme)),
				),
				dispatchers.Literal("pick").Describe("Choose a theme interactively").Executes(theme.Pick(r.Theme)),
			),

		dispatchers.Literal("logs").
			Describe("Show recent log lines").
			In(dispatchers.CategoryConfig).
			Executes(logs.View(r.Logs)).
			Then(
				dispatchers.Literal("tail").Describe("Follow the log file").Executes(logs.Tail(r.Logs)),
				dispatchers.Literal("clear").Describe("Empty the log file").Executes(logs.Clear(r.Logs)),
				dispatchers.Literal("json").
					Describe("Show log lines as JSON").
					Executes(logs.ViewJSON(r.Logs)).
					Then(dispatchers.Argument("limit", arguments.Uint(32)).Executes(logs.ViewJSON(r.Logs))),
				dispatchers.Argument("limit", arguments.Uint(32)).
					Describe("Show the last <limit> log lines").
					Executes(logs.View(r.Logs)),
			),

		dispatchers.Literal("version").
			Describe("Show verbs version").
			Executes(actions.ShowVersion).
			Then(dispatchers.Argument("verbose", arguments.Enum("verbose")).
				Describe("Include build details").
				Executes(actions.ShowVersion)),
	)

	return tree
}

func (r *Runner) exec(ctx context.Context, args *arguments.Store) (int, error) {
	line, err := args.String("line")
	if err != nil {
		return 1, err
	}
	return r.Session.Execute(ctx, line)
}

func (r *Runner) run(ctx context.Context, args *arguments.Store) (int, error) {
	path, err := args.String("file")
	if err != nil {
		return 1, err
	}

	var src io.Reader = r.Stdin
	if path != "-" {
		f, err := r.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			return 1, usage.ScriptNotFound(path)
		}
		if err != nil {
			return 1, err
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	code, err := r.Session.RunScript(ctx, src)
	if err != nil {
		return code, scriptFailure(path, code, err)
	}
	return code, nil
}

// scriptFailure prefixes a failing line's error with its location.
func scriptFailure(path string, code int, err error) error {
	var se *console.ScriptError
	if !errors.As(err, &se) {
		return err
	}

	ue := usage.FromError(se.Err)
	return &usage.Error{
		Kind:     ue.Kind,
		Message:  fmt.Sprintf("%s: %s:%d: %s", usage.Program, path, se.Line, strings.TrimPrefix(ue.Message, usage.Program+": ")),
		Detail:   ue.Detail,
		ExitCode: code,
		Err:      err,
	}
}

func (r *Runner) console(ctx context.Context, _ *arguments.Store) (int, error) {
	return r.Interactive(ctx)
}

func (r *Runner) commands(_ context.Context, _ *arguments.Store) error {
	r.Output(dispatchers.RenderOverview("console commands", r.Session.Registry().Commands()))
	return nil
}

func (r *Runner) help(root *dispatchers.Node, args *arguments.Store) error {
	name := args.StringOr("command", "")
	if name == "" {
		r.Output(dispatchers.RenderTree(helpTitle, root) + renderFlags())
		return nil
	}

	if d, ok := r.Session.Registry().Usage(name); ok {
		r.Output(dispatchers.RenderCommand(d))
		return nil
	}
	for _, child := range root.Children() {
		if child.IsLiteral() && child.Usage() == name {
			r.Output(dispatchers.RenderTree("", child))
			return nil
		}
	}

	known := append(dispatchers.CollectAllCommands(root), r.Session.Registry().Names()...)
	return usage.UnknownCommand(name, dispatchers.FindSimilarCommands(name, known, 3)...)
}

func renderFlags() string {
	var b strings.Builder
	b.WriteString("Flags\n")
	for _, f := range GlobalFlags {
		names := strings.Join(f.Names, ", ")
		if f.TakesValue() {
			names += "=" + f.ValueHint
		}
		fmt.Fprintf(&b, "   %-20s  %s\n", names, f.Description)
	}
	return b.String()
}

func (r *Runner) completions(root *dispatchers.Node, args *arguments.Store, script bool) error {
	shell := completions.Shell(args.StringOr("shell", ""))
	if shell == "" {
		shell = completions.RunningShell()
		if shell == "" {
			return fmt.Errorf("could not detect shell, specify one: %s completions <bash|zsh|fish>", program)
		}
	}

	if !script {
		_, _ = fmt.Fprintf(r.Out, "To enable completions, add this line to %s:\n\n", completions.RcFile(shell))
		_, _ = fmt.Fprintf(r.Out, "   %s\n\n", completions.SourceInstructions(shell, program))
		_, _ = fmt.Fprintln(r.Out, "Then restart your shell or run: exec $SHELL")
		return nil
	}

	commands := completions.ExtractCommands(program, root, completionFlags())
	if exec := completions.FindCommand(commands, []string{program, "exec"}); exec != nil {
		exec.Subcommands = r.Session.Registry().Names()
	}

	text, err := completions.Script(shell, program, commands)
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.Out, text)
	return err
}

func completionFlags() []completions.FlagInfo {
	flags := make([]completions.FlagInfo, len(GlobalFlags))
	for i, f := range GlobalFlags {
		flags[i] = completions.FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.TakesValue(),
		}
	}
	return flags
}
