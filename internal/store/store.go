// Package store persists editor session state in SQLite: prompt history
// and the last cursor position of every file.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS prompt_history (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	line     TEXT NOT NULL,
	created  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	path     TEXT PRIMARY KEY,
	x        INTEGER NOT NULL,
	y        INTEGER NOT NULL,
	updated  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_positions_updated ON positions(updated);
`

// DB is a SQLite-backed session store. A nil *DB is valid and stores
// nothing.
type DB struct {
	mu  sync.Mutex
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens a session database at the given path.
// Cursor positions not updated within ttl are dropped on open; a zero ttl
// keeps them forever.
func Open(dbPath string, ttl time.Duration) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &DB{db: db, ttl: ttl}
	s.purgeStale()
	return s, nil
}

// Close closes the database.
func (s *DB) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// purgeStale removes positions older than the TTL.
func (s *DB) purgeStale() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.Exec("DELETE FROM positions WHERE updated <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale positions")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("purged stale cursor positions")
	}
}
