package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tuinotes/internal/domain"
	"tuinotes/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// DefaultKeep is how many entries hosts keep when pruning at startup
const DefaultKeep = 1000

// Journal implements ports.Journal using SQLite
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Ensure Journal implements ports.Journal
var _ ports.Journal = (*Journal)(nil)

// Open creates or opens the journal database at dbPath
func Open(dbPath string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	// WAL mode lets the CLI read while the TUI writes
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			action TEXT NOT NULL,
			slot TEXT NOT NULL,
			title TEXT NOT NULL,
			at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_at ON entries(at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &Journal{db: db, dbPath: dbPath}, nil
}

// Path returns the database location
func (j *Journal) Path() string {
	return j.dbPath
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends an entry
func (j *Journal) Record(ctx context.Context, e domain.JournalEntry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO entries (id, action, slot, title, at)
		VALUES (?, ?, ?, ?, ?)
	`, e.ID, e.Action, joinSlots(e.Slots), e.Title, e.At.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Action, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, action, slot, title, at
		FROM entries
		ORDER BY at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		var e domain.JournalEntry
		var slots string
		var at int64
		if err := rows.Scan(&e.ID, &e.Action, &slots, &e.Title, &at); err != nil {
			return nil, err
		}
		e.Slots = splitSlots(slots)
		e.At = time.Unix(0, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Prune deletes all but the newest keep entries
func (j *Journal) Prune(ctx context.Context, keep int) (int64, error) {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM entries WHERE rowid NOT IN (
			SELECT rowid FROM entries ORDER BY at DESC, rowid DESC LIMIT ?
		)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES ('pruned_at', ?)`,
		strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func joinSlots(slots []int) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

func splitSlots(s string) []int {
	if s == "" {
		return nil
	}
	var slots []int
	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(part); err == nil {
			slots = append(slots, n)
		}
	}
	return slots
}
