package store

import (
	"database/sql"
	"errors"
	"time"
)

// --- Prompt history ---

// AppendHistory records a submitted prompt line. No-op on nil receiver.
func (s *DB) AppendHistory(line string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO prompt_history (line, created) VALUES (?, ?)",
		line, time.Now().Unix(),
	)
	return err
}

// History returns up to limit prompt lines, newest first. A limit of zero
// or less returns everything.
func (s *DB) History(limit int) ([]string, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.Query(
		"SELECT line FROM prompt_history ORDER BY id DESC LIMIT ?", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// TrimHistory keeps only the newest keep lines.
func (s *DB) TrimHistory(keep int) error {
	if s == nil || keep <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`DELETE FROM prompt_history WHERE id NOT IN (
			SELECT id FROM prompt_history ORDER BY id DESC LIMIT ?
		)`, keep,
	)
	return err
}

// --- Cursor positions ---

// SavePosition records the cursor of the file at path.
func (s *DB) SavePosition(path string, x, y int) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO positions (path, x, y, updated) VALUES (?, ?, ?, ?)",
		path, x, y, time.Now().Unix(),
	)
	return err
}

// Position returns the saved cursor of the file at path. ok is false when
// none was saved.
func (s *DB) Position(path string) (x, y int, ok bool, err error) {
	if s == nil {
		return 0, 0, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.QueryRow(
		"SELECT x, y FROM positions WHERE path = ?", path,
	).Scan(&x, &y)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return x, y, true, nil
}
