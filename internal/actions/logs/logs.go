package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
)

const defaultLogLimit = 50

// View shows the last lines of the log file.
func View(deps Deps) func(context.Context, *arguments.Store) error {
	return bind(view, deps)
}

// ViewJSON shows the last lines of the log file as a JSON array.
func ViewJSON(deps Deps) func(context.Context, *arguments.Store) error {
	return bind(viewJSON, deps)
}

func view(_ context.Context, args *arguments.Store, deps Deps) error {
	lines, ok, err := readTail(args, deps)
	if err != nil || !ok {
		return err
	}
	for _, line := range lines {
		_, _ = deps.Println(colorizeLogLine(deps.Styler, line))
	}
	return nil
}

func viewJSON(_ context.Context, args *arguments.Store, deps Deps) error {
	lines, _, err := readTail(args, deps)
	if err != nil {
		return err
	}

	entries := make([]Record, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, ParseRecord(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// readTail returns the last lines of the log. ok is false, with a notice
// printed, when there is nothing to show.
func readTail(args *arguments.Store, deps Deps) ([]string, bool, error) {
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		_, _ = deps.Println(deps.Styler.Muted("No log file found at " + logPath))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		return nil, false, nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return nil, false, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	limit := defaultLogLimit
	if n, err := args.Uint("limit"); err == nil && n > 0 {
		limit = int(n)
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines, true, nil
}

// Tail follows the log file until ctx is cancelled.
func Tail(deps Deps) func(context.Context, *arguments.Store) error {
	return bind(tail, deps)
}

func tail(ctx context.Context, _ *arguments.Store, deps Deps) error {
	logPath := deps.LogFilePath()

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println()

	reader := bufio.NewReader(file)
	ticker := time.NewTicker(deps.PollInterval)
	defer ticker.Stop()

	var partial string
	for {
		line, err := reader.ReadString('\n')
		partial += line
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(deps.Styler, strings.TrimSuffix(partial, "\n")))
			partial = ""
			continue
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file.
func Clear(deps Deps) func(context.Context, *arguments.Store) error {
	return bind(clearLog, deps)
}

func clearLog(_ context.Context, _ *arguments.Store, deps Deps) error {
	if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}
	_, _ = deps.Println(deps.Styler.Success("Log file cleared"))
	return nil
}

// colorizeLogLine colors a record by its level.
func colorizeLogLine(st domain.Styler, line string) string {
	switch ParseRecord(line).Level {
	case "ERROR":
		return st.Error(line)
	case "WARN":
		return st.Warning(line)
	case "INFO":
		return st.Info(line)
	case "DEBUG":
		return st.Muted(line)
	}
	return line
}
