// Package journal records committed rename batches in a SQLite database so a
// user can look up afterwards which folder used to be called what. It is an
// audit trail only; nothing reads it back to drive renames.
package journal

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/backmassage/foldernorm/internal/naming"
)

// Entry is one item of a recorded batch.
type Entry struct {
	Index    int // 1-based position in the batch.
	Original string
	New      string
	Outcome  string
	Reason   string
}

// Batch is the header row of a recorded commit.
type Batch struct {
	ID        string
	Dir       string
	Options   naming.Options
	CreatedAt time.Time
	Total     int
	Renamed   int
}

// DB is an open journal.
type DB struct {
	conn *sql.DB
	now  func() time.Time
}

// Open creates (if needed) and opens the journal at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create journal directory")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "enable WAL")
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "init journal schema")
	}
	return db, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS batches (
  id TEXT PRIMARY KEY,
  dir TEXT NOT NULL,
  options TEXT NOT NULL,
  created_at TEXT NOT NULL,
  total INTEGER NOT NULL,
  renamed INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_batches_created_at ON batches(created_at);

CREATE TABLE IF NOT EXISTS entries (
  batch_id TEXT NOT NULL REFERENCES batches(id),
  idx INTEGER NOT NULL,
  original TEXT NOT NULL,
  new_name TEXT NOT NULL,
  outcome TEXT NOT NULL,
  reason TEXT NOT NULL DEFAULT '',
  PRIMARY KEY (batch_id, idx)
);
`
	_, err := d.conn.Exec(schema)
	return err
}

// Record stores one committed batch and returns its generated ID. The batch
// header and all entries are written in a single transaction.
func (d *DB) Record(dir string, opts naming.Options, entries []Entry) (string, error) {
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return "", errors.Wrap(err, "encode options")
	}

	renamed := 0
	for _, e := range entries {
		if e.Outcome == OutcomeRenamed {
			renamed++
		}
	}

	id := uuid.NewString()
	tx, err := d.conn.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(
		`INSERT INTO batches (id, dir, options, created_at, total, renamed) VALUES (?, ?, ?, ?, ?, ?)`,
		id, dir, string(optsJSON), d.now().UTC().Format(time.RFC3339Nano), len(entries), renamed,
	); err != nil {
		return "", errors.Wrap(err, "insert batch")
	}

	stmt, err := tx.Prepare(`
INSERT INTO entries (batch_id, idx, original, new_name, outcome, reason)
VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(id, e.Index, e.Original, e.New, e.Outcome, e.Reason); err != nil {
			return "", errors.Wrapf(err, "insert entry %d", e.Index)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", errors.Wrap(err, "commit journal")
	}
	return id, nil
}

// OutcomeRenamed is the Entry.Outcome counted in Batch.Renamed.
const OutcomeRenamed = "renamed"

// Entries returns the items of batchID in batch order.
func (d *DB) Entries(batchID string) ([]Entry, error) {
	rows, err := d.conn.Query(`
SELECT idx, original, new_name, outcome, reason
FROM entries WHERE batch_id = ? ORDER BY idx`, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Index, &e.Original, &e.New, &e.Outcome, &e.Reason); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Batches returns every recorded batch, newest first.
func (d *DB) Batches() ([]Batch, error) {
	rows, err := d.conn.Query(`
SELECT id, dir, options, created_at, total, renamed
FROM batches ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Batch
	for rows.Next() {
		var b Batch
		var optsJSON, created string
		if err := rows.Scan(&b.ID, &b.Dir, &optsJSON, &created, &b.Total, &b.Renamed); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(optsJSON), &b.Options)
		b.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		out = append(out, b)
	}
	return out, rows.Err()
}
