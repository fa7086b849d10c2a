package domain

import "time"

// HistoryEntry is one line handed to the dispatcher, with its outcome.
type HistoryEntry struct {
	ID        int64
	Session   string
	Line      string
	Command   string
	ExitCode  int
	Error     string
	CreatedAt time.Time
}

// Failed reports whether the line did not run successfully.
func (e HistoryEntry) Failed() bool {
	return e.ExitCode != 0 || e.Error != ""
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	// Session restricts results to one console session when non-empty.
	Session string

	// Command restricts results to lines that resolved to this command.
	Command string

	// Limit caps the number of entries returned. Zero means no limit.
	Limit int
}
