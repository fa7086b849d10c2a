package store

import (
	"strings"
	"time"

	"github.com/footprint-tools/verbs/internal/domain"
)

// Record appends an entry. A zero CreatedAt is stamped with the current time.
func (s *Store) Record(entry domain.HistoryEntry) (int64, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO history (session, line, command, exit_code, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Session,
		entry.Line,
		entry.Command,
		entry.ExitCode,
		entry.Error,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// List returns the most recent entries matching filter, oldest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	base := `
		SELECT
			id,
			session,
			line,
			command,
			exit_code,
			error,
			created_at
		FROM history
	`

	var (
		clauses []string
		args    []any
	)

	if filter.Session != "" {
		clauses = append(clauses, "session = ?")
		args = append(args, filter.Session)
	}

	if filter.Command != "" {
		clauses = append(clauses, "command = ?")
		args = append(args, filter.Command)
	}

	query := base

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryEntry

	for rows.Next() {
		var (
			e  domain.HistoryEntry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Session, &e.Line, &e.Command, &e.ExitCode, &e.Error, &ts); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, err
		}
		e.CreatedAt = t
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest were fetched first so LIMIT keeps the latest ones.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// Count returns the number of recorded entries.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM history").Scan(&n)
	return n, err
}

// Clear deletes every entry.
func (s *Store) Clear() (int64, error) {
	result, err := s.db.Exec("DELETE FROM history")
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
