package store

import (
	"context"
	"database/sql"
	"fmt"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the journal in memory for the life of the process.
const MemoryDSN = "file::memory:?cache=shared"

// Store holds the journal database and provides access to repositories.
type Store struct {
	db  *sql.DB
	seq *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the journal tables.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection: an in-memory database lives and dies with it.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, seq: s.seq}
}

// applyPragmas configures SQLite for single-user use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS run_events (
		sequence   INTEGER PRIMARY KEY,
		run_id     TEXT NOT NULL,
		action     TEXT NOT NULL,
		score      INTEGER NOT NULL DEFAULT 0,
		total      INTEGER NOT NULL DEFAULT 0,
		timestamp  TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS run_events_run_id ON run_events (run_id)`,
	`CREATE TABLE IF NOT EXISTS answer_events (
		sequence       INTEGER PRIMARY KEY,
		run_id         TEXT NOT NULL,
		question_index INTEGER NOT NULL,
		question_text  TEXT NOT NULL,
		chosen_index   INTEGER NOT NULL,
		chosen_text    TEXT NOT NULL,
		correct_index  INTEGER NOT NULL,
		correct        BOOLEAN NOT NULL,
		time_ms        INTEGER NOT NULL,
		timestamp      TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS answer_events_run_id ON answer_events (run_id)`,
}

func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
