package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	cfgactions "github.com/footprint-tools/verbs/internal/actions/config"
	"github.com/footprint-tools/verbs/internal/actions/history"
	"github.com/footprint-tools/verbs/internal/actions/logs"
	"github.com/footprint-tools/verbs/internal/actions/theme"
	"github.com/footprint-tools/verbs/internal/app"
	"github.com/footprint-tools/verbs/internal/config"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/log"
	"github.com/footprint-tools/verbs/internal/paths"
	"github.com/footprint-tools/verbs/internal/ui"
	"github.com/footprint-tools/verbs/internal/ui/style"
	"github.com/footprint-tools/verbs/internal/usage"
)

// Streams are the standard streams of one invocation.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run executes one command-line invocation and returns its exit code.
func Run(ctx context.Context, args []string, streams Streams) int {
	rawFlags, words, err := SplitArgs(args)
	if err != nil {
		return fail(streams.Err, err)
	}
	flags := NewParsedFlags(rawFlags)

	if err := config.LoadEnv(paths.EnvFilePath()); err != nil {
		return fail(streams.Err, fmt.Errorf("load %s: %w", paths.EnvFilePath(), err))
	}

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}
	if flags.Has("--quiet") {
		ui.EnableQuiet()
	}

	opts := app.DefaultOptions()
	opts.StyleEnabled = opts.StyleEnabled && isTerminal(streams.Out) && !flags.Has("--no-color")
	opts.PagerDisabled = flags.Has("--no-pager")
	opts.PagerOverride = flags.String("--pager", "")
	opts.Out = streams.Out
	if level := flags.String("--log-level", ""); level != "" {
		opts.LogEnabled = true
		opts.LogLevel = log.ParseLevel(level)
	}

	application, err := app.New(opts)
	if err != nil {
		return fail(streams.Err, err)
	}
	defer func() { _ = app.Close(application) }()

	cfg, err := config.GetAll()
	if err != nil {
		return fail(streams.Err, usage.FailedConfigPath(err))
	}

	session, err := NewSession(application, cfg, streams.Out)
	if err != nil {
		return fail(streams.Err, err)
	}

	runner := &Runner{
		Session:     session,
		History:     history.ForApp(application),
		Config:      cfgactions.ForApp(application),
		Theme:       theme.ForApp(application),
		Logs:        logs.ForApp(application),
		Output:      application.Output.Pager,
		Out:         streams.Out,
		Stdin:       streams.In,
		Open:        func(path string) (io.ReadCloser, error) { return os.Open(path) },
		Interactive: session.Interactive,
	}
	tree := BuildTree(runner, dispatchers.ParseErrorPolicy(cfg["error_policy"]))

	line := commandLine(flags, words)
	application.Logger.Debug("cli: dispatching %q", line)

	code, err := tree.Dispatch(ctx, line)
	if err != nil {
		ue := usage.FromError(err, dispatchers.CollectAllCommands(tree.Root())...)
		application.Logger.Info("cli: %s", ue.Message)
		printError(streams.Err, ue)
		if code == 0 {
			code = ue.GetExitCode()
		}
	}
	return code
}

// commandLine turns --help and --version into their commands.
func commandLine(flags *ParsedFlags, words []string) string {
	switch {
	case flags.Has("--help"):
		if len(words) > 0 {
			return JoinArgs([]string{"help", words[0]})
		}
		return "help"
	case flags.Has("--version"):
		return "version"
	}
	if len(words) == 2 && words[0] == "exec" {
		// verbs exec 'add 1 2': the shell already grouped the console line.
		return "exec " + words[1]
	}
	return JoinArgs(words)
}

func fail(w io.Writer, err error) int {
	ue := usage.FromError(err)
	printError(w, ue)
	return ue.GetExitCode()
}

func printError(w io.Writer, ue *usage.Error) {
	_, _ = fmt.Fprintln(w, style.Error(ue.Full()))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
