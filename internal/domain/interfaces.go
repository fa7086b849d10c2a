package domain

import (
	"io"
)

// HistoryStore records dispatched lines and reads them back.
type HistoryStore interface {
	// Record appends an entry and returns its row id.
	Record(entry HistoryEntry) (int64, error)

	// List returns the most recent entries matching filter, oldest first.
	List(filter HistoryFilter) ([]HistoryEntry, error)

	// Clear deletes every entry and returns how many were removed.
	Clear() (int64, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider reads and edits the rc file. Writes are serialized with
// the other processes that share it.
type ConfigProvider interface {
	// Get resolves a key through environment, file and defaults.
	Get(key string) (string, bool)

	// GetAll returns every resolved value.
	GetAll() (map[string]string, error)

	// Set writes key=value, reporting whether the key already had a line.
	Set(key, value string) (updated bool, err error)

	// Unset removes key's line, reporting whether there was one.
	Unset(key string) (removed bool, err error)

	// Reset replaces the file with the commented defaults and returns its path.
	Reset() (path string, err error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	History HistoryStore
	Config  ConfigProvider
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
}
