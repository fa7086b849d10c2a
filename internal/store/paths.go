package store

import (
	"github.com/footprint-tools/verbs/internal/paths"
)

// DBPath returns the default history database location.
func DBPath() string {
	return paths.HistoryDBPath()
}
