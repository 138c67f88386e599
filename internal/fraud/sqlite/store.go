// Package sqlite provides a SQLite-backed implementation of fraud.Store.
//
// WAL mode is enabled on Open so reads during a call never block the status
// update that resolves the case.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jcmexdev/voicecart/internal/fraud"

	// Register the pure-Go SQLite driver.
	// modernc.org/sqlite instead of mattn/go-sqlite3 to avoid CGO
	// requirements, making it easier to build and run in Docker (Alpine).
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup.
const schema = `
CREATE TABLE IF NOT EXISTS fraud_cases (
    -- Customer name. Lookups lower() both sides, so mixed-case seeds work.
    user_name               TEXT PRIMARY KEY,

    -- Expected answer to the identity question. Never shown to the caller.
    verification_answer     TEXT NOT NULL,

    -- Human description of the flagged transaction.
    suspicious_transaction  TEXT NOT NULL DEFAULT '',

    -- Resolution state: pending / confirmed_safe / confirmed_fraud.
    status                  TEXT NOT NULL DEFAULT 'pending',

    -- Agent note from the most recent update.
    notes                   TEXT NOT NULL DEFAULT '',

    -- Wall-clock timestamp of the last update (RFC3339 stored as TEXT, SQLite idiom).
    updated_at              TEXT NOT NULL DEFAULT ''
);
`

// Store is the SQLite implementation of fraud.Store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	store, err := sqlite.Open("./data/fraud_cases.db")
func Open(path string) (*Store, error) {
	// The pure-Go driver uses _pragma query parameters to configure connection state.
	// busy_timeout waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// Use "sqlite", not "sqlite3" for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// A single connection serialises every update-by-key, so two agents
	// resolving the same case cannot interleave a lost update.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadCase returns the case for userName, matched case-insensitively.
func (s *Store) LoadCase(ctx context.Context, userName string) (*fraud.Case, error) {
	const q = `
		SELECT user_name, verification_answer, suspicious_transaction, status, notes, updated_at
		FROM   fraud_cases
		WHERE  LOWER(user_name) = LOWER(?)
		LIMIT  1`

	row := s.db.QueryRowContext(ctx, q, userName)

	var c fraud.Case
	var updatedAt string
	err := row.Scan(
		&c.UserName,
		&c.VerificationAnswer,
		&c.SuspiciousTransaction,
		&c.Status,
		&c.Notes,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fraud.ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load case %q: %w", userName, err)
	}

	if updatedAt != "" {
		c.UpdatedAt, err = parseRFC3339(updatedAt)
		if err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// VerifyAnswer compares the caller's answer against the stored one,
// case-insensitively. An unknown user verifies as false.
func (s *Store) VerifyAnswer(ctx context.Context, userName, answer string) (bool, error) {
	const q = `
		SELECT verification_answer
		FROM   fraud_cases
		WHERE  LOWER(user_name) = LOWER(?)`

	var expected string
	err := s.db.QueryRowContext(ctx, q, userName).Scan(&expected)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite: verify answer for %q: %w", userName, err)
	}

	return equalFold(expected, answer), nil
}

// UpdateStatus sets status, notes and updated_at in place.
func (s *Store) UpdateStatus(ctx context.Context, userName string, status fraud.Status, note string) error {
	const q = `
		UPDATE fraud_cases
		SET    status = ?, notes = ?, updated_at = ?
		WHERE  LOWER(user_name) = LOWER(?)`

	res, err := s.db.ExecContext(ctx, q,
		string(status),
		note,
		time.Now().UTC().Format(time.RFC3339Nano),
		userName,
	)
	if err != nil {
		return fmt.Errorf("sqlite: update case %q: %w", userName, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: update case %q: %w", userName, err)
	}
	if affected == 0 {
		return fraud.ErrCaseNotFound
	}
	return nil
}

// SaveCase inserts or replaces a case row.
func (s *Store) SaveCase(ctx context.Context, c *fraud.Case) error {
	const q = `
		INSERT OR REPLACE INTO fraud_cases
			(user_name, verification_answer, suspicious_transaction, status, notes, updated_at)
		VALUES
			(?, ?, ?, ?, ?, ?)`

	updatedAt := ""
	if !c.UpdatedAt.IsZero() {
		updatedAt = c.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := s.db.ExecContext(ctx, q,
		c.UserName,
		c.VerificationAnswer,
		c.SuspiciousTransaction,
		string(c.Status),
		c.Notes,
		updatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: save case %q: %w", c.UserName, err)
	}
	return nil
}
