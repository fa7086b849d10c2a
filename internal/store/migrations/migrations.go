// Package migrations applies the embedded SQLite schema for the history
// store. Each file under sql/ is named NN_description.sql and runs once,
// in version order, inside its own transaction.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one schema change.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

// Name returns the file stem, e.g. "01_history".
func (m Migration) Name() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations in version order.
func Load() ([]Migration, error) {
	return LoadFS(sqlFiles, "sql")
}

// LoadFS reads NN_description.sql files from dir in fsys. Other files are
// ignored; a repeated version is an error.
func LoadFS(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}

		m, err := parseFilename(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		m.SQL = string(content)
		out = append(out, m)
	}

	slices.SortFunc(out, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })

	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", out[i].Version, out[i-1].Name(), out[i].Name())
		}
	}
	return out, nil
}

func parseFilename(name string) (Migration, error) {
	stem := strings.TrimSuffix(name, ".sql")
	num, desc, ok := strings.Cut(stem, "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("invalid format, expected NN_description.sql")
	}

	version, err := strconv.Atoi(num)
	if err != nil {
		return Migration{}, fmt.Errorf("invalid version number: %w", err)
	}
	if version <= 0 {
		return Migration{}, fmt.Errorf("version must be positive, got %d", version)
	}

	return Migration{Version: version, Description: desc}, nil
}

// Run applies the embedded migrations that db has not seen yet.
func Run(db *sql.DB) error {
	all, err := Load()
	if err != nil {
		return err
	}
	return Apply(db, all)
}

// Apply runs every migration newer than the current schema version. A
// failing migration is rolled back and stops the run.
func Apply(db *sql.DB, all []Migration) error {
	pending, err := pendingOf(db, all)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := applyOne(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.Name(), err)
		}
	}
	return nil
}

func applyOne(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied version, or 0 on a fresh
// database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the embedded migrations not yet applied to db.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	return pendingOf(db, all)
}

func pendingOf(db *sql.DB, all []Migration) ([]Migration, error) {
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(all, func(m Migration) bool { return m.Version > current })
	if i < 0 {
		return nil, nil
	}
	return all[i:], nil
}
