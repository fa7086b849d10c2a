package app

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/verbs/internal/config"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/log"
	"github.com/footprint-tools/verbs/internal/paths"
	"github.com/footprint-tools/verbs/internal/store"
	"github.com/footprint-tools/verbs/internal/ui"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// History options. An empty HistoryPath uses the default location.
	HistoryEnabled bool
	HistoryPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Out receives regular output. Nil means stdout.
	Out io.Writer
}

// DefaultOptions reads the application options from configuration.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		LogEnabled:     cfg["log_enabled"] != "false",
		LogLevel:       log.ParseLevel(cfg["log_level"]),
		HistoryEnabled: cfg["history_enabled"] != "false",
		StyleEnabled:   cfg["color"] != "false",
		StyleConfig:    cfg,
	}
}

// New creates a new Application with all dependencies wired up. The
// history store is nil when history is disabled.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// A log file we cannot open is not worth failing the command over.
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			logger = l
		}
	}

	var history domain.HistoryStore
	if opts.HistoryEnabled {
		dbPath := opts.HistoryPath
		if dbPath == "" {
			dbPath = store.DBPath()
		}
		s, err := store.New(dbPath)
		if err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
		history = s
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	logger.Debug("app: started (history=%t, color=%t)", history != nil, style.Enabled())

	return &domain.Application{
		History: history,
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriterTo(out, writerOpts...),
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application with no history, a NopLogger and
// no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		Config: config.NewProvider(),
		Logger: log.NopLogger{},
		Output: ui.NewWriter(ui.WithPagerDisabled()),
		Styler: style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
