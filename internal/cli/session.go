package cli

import (
	"io"
	"strconv"

	"github.com/footprint-tools/verbs/internal/console"
	"github.com/footprint-tools/verbs/internal/dispatchers"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/paths"
)

// NewSession builds the console session from configuration and loads the
// command definitions file. The default definitions file may be absent; a
// configured one must exist.
func NewSession(application *domain.Application, cfg map[string]string, out io.Writer) (*console.Session, error) {
	opts := []console.Option{
		console.WithOutput(out),
		console.WithLogger(application.Logger),
		console.WithErrorPolicy(dispatchers.ParseErrorPolicy(cfg["error_policy"])),
	}
	if application.Styler != nil {
		opts = append(opts, console.WithStyler(application.Styler))
	}
	if application.History != nil {
		opts = append(opts, console.WithHistory(application.History))
	}
	if p, ok := cfg["prompt"]; ok && p != "" {
		opts = append(opts, console.WithPrompt(p))
	}
	if n, err := strconv.Atoi(cfg["history_limit"]); err == nil && n >= 0 {
		opts = append(opts, console.WithHistoryLimit(n))
	}

	s, err := console.New(opts...)
	if err != nil {
		return nil, err
	}

	path := cfg["commands_file"]
	optional := path == "" || path == paths.CommandsFilePath()
	if path == "" {
		path = paths.CommandsFilePath()
	}
	if err := s.LoadDefinitions(path, optional); err != nil {
		return nil, err
	}
	return s, nil
}
