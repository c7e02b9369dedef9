package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/az-ai-labs/numwords/internal/scan"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id      TEXT PRIMARY KEY,
	root        TEXT NOT NULL,
	started     INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	files       INTEGER NOT NULL,
	matches     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS matches (
	run_id       TEXT NOT NULL REFERENCES runs(run_id),
	path         TEXT NOT NULL,
	text         TEXT NOT NULL,
	value        INTEGER NOT NULL,
	start_offset INTEGER NOT NULL,
	end_offset   INTEGER NOT NULL,
	line         INTEGER NOT NULL,
	col          INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_matches_path ON matches(path, start_offset);
CREATE INDEX IF NOT EXISTS idx_matches_value ON matches(value);
CREATE INDEX IF NOT EXISTS idx_matches_run ON matches(run_id);
`

// SQLiteConfig configures NewSQLiteStore.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// SQLiteStore is a Store backed by a SQLite database file.
type SQLiteStore struct {
	db        *sql.DB
	closeOnce sync.Once
}

// NewSQLiteStore opens or creates the database at cfg.Path and ensures the
// schema exists.
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("db path cannot be empty")
	}
	if cfg.BusyTimeout == 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)&_pragma=foreign_keys(1)",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite only supports a single writer

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveReport stores the run and all of its matches in one transaction.
// Saving the same run twice fails.
func (s *SQLiteStore) SaveReport(ctx context.Context, r *scan.Report) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, root, started, duration_ms, files, matches) VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Root, r.Started.UnixMilli(), r.Duration.Milliseconds(), len(r.Files), r.Matches)
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", r.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO matches (run_id, path, text, value, start_offset, end_offset, line, col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records(r) {
		if _, err = stmt.ExecContext(ctx,
			rec.RunID, rec.Path, rec.Text, rec.Value, rec.Start, rec.End, rec.Line, rec.Column); err != nil {
			return fmt.Errorf("failed to insert match: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Query returns the records matching q.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]Record, error) {
	where, args := buildWhereClause(q)
	query := `SELECT run_id, path, text, value, start_offset, end_offset, line, col FROM matches` +
		where + ` ORDER BY path, start_offset, run_id`
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.RunID, &r.Path, &r.Text, &r.Value, &r.Start, &r.End, &r.Line, &r.Column); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	return out, nil
}

// Count returns the number of records matching q, ignoring q.Limit.
func (s *SQLiteStore) Count(ctx context.Context, q Query) (int64, error) {
	where, args := buildWhereClause(q)
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}

// Close closes the database. Further calls are no-ops.
func (s *SQLiteStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.db.Close()
	})
	return err
}

// buildWhereClause returns a WHERE clause (with leading space, or empty) and
// its arguments.
func buildWhereClause(q Query) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if q.RunID != "" {
		conditions = append(conditions, "run_id = ?")
		args = append(args, q.RunID)
	}
	if q.Path != "" {
		conditions = append(conditions, "path = ?")
		args = append(args, q.Path)
	}
	if q.Min != nil {
		conditions = append(conditions, "value >= ?")
		args = append(args, *q.Min)
	}
	if q.Max != nil {
		conditions = append(conditions, "value <= ?")
		args = append(args, *q.Max)
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}
