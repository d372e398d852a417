// Package journal persists a history of external CLI invocations to a local
// SQLite database. The history replaces scraping a debug log file when a
// user reports that an operation failed: every invocation is recorded with
// its outcome and duration, and the most recent entries are listable from
// the CLI.
package journal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the journal database file under the data directory.
const dbFileName = "journal.db"

// maxMessageLen caps the stored CLI output; full output can be megabytes of
// export diagnostics.
const maxMessageLen = 4000

// Entry is one recorded CLI invocation.
type Entry struct {
	ID        int64         `json:"id"`
	Operation string        `json:"operation"`
	Args      string        `json:"args"`
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	Duration  time.Duration `json:"duration"`
	StartedAt time.Time     `json:"started_at"`
}

// Journal is an open invocation journal. Not safe for concurrent use; the
// CLI records sequentially.
type Journal struct {
	db *sql.DB
}

// Open opens (creating if needed) the journal database under dataDir and
// applies the schema.
func Open(dataDir string) (*Journal, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open journal database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply journal schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Record appends one invocation to the journal. The message is truncated to
// a bounded length.
func (j *Journal) Record(e Entry) error {
	msg := e.Message
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}

	success := 0
	if e.Success {
		success = 1
	}

	_, err := j.db.Exec(
		`INSERT INTO invocations (operation, args, success, message, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Operation, e.Args, success, msg, e.Duration.Milliseconds(),
		e.StartedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record invocation: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (j *Journal) List(limit int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, operation, args, success, message, duration_ms, started_at
		 FROM invocations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query invocations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var success int
		var durationMS int64
		var startedAt string

		if err := rows.Scan(&e.ID, &e.Operation, &e.Args, &success, &e.Message, &durationMS, &startedAt); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}

		e.Success = success != 0
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			e.StartedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invocations: %w", err)
	}
	return entries, nil
}

// Close releases the database handle. Safe to call once after Open.
func (j *Journal) Close() error {
	return j.db.Close()
}
