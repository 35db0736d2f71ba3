package perf

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"fangless/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS samples (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	n           INTEGER NOT NULL,
	value       TEXT NOT NULL,
	duration_ns INTEGER NOT NULL,
	PRIMARY KEY (run_id, n)
);
CREATE INDEX IF NOT EXISTS runs_kind ON runs(kind, started_at);
`

// Run is one benchmark invocation
type Run struct {
	ID        string
	Kind      Kind
	StartedAt time.Time
	Samples   []Sample
}

// Total sums the sample durations
func (r *Run) Total() time.Duration {
	var total time.Duration
	for _, s := range r.Samples {
		total += s.Duration
	}
	return total
}

// Store persists runs in a SQLite database
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path; ":memory:" works for
// throwaway stores
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("missing database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection, so an in-memory database is shared by every query
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database location
func (s *Store) Path() string {
	return s.path
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record saves run with all its samples in one transaction. A run without
// an ID gets a fresh one, which is returned.
func (s *Store) Record(ctx context.Context, run *Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, kind, started_at) VALUES (?, ?, ?)`,
		run.ID, string(run.Kind), run.StartedAt.UnixNano()); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	for _, sample := range run.Samples {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO samples (run_id, n, value, duration_ns) VALUES (?, ?, ?, ?)`,
			run.ID, sample.N, types.Canonical(sample.Value), int64(sample.Duration)); err != nil {
			return "", fmt.Errorf("insert sample %d: %w", sample.N, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

// Runs returns the recorded runs of kind, oldest first. An empty kind
// returns every run.
func (s *Store) Runs(ctx context.Context, kind Kind) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, started_at FROM runs
		 WHERE ? = '' OR kind = ?
		 ORDER BY started_at, id`,
		string(kind), string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			run     Run
			k       string
			started int64
		)
		if err := rows.Scan(&run.ID, &k, &started); err != nil {
			return nil, err
		}
		run.Kind = Kind(k)
		run.StartedAt = time.Unix(0, started)
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Samples are loaded after the cursor is closed: the pool has one connection
	rows.Close()

	for _, run := range runs {
		if run.Samples, err = s.samples(ctx, run.ID); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

func (s *Store) samples(ctx context.Context, runID string) ([]Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT n, value, duration_ns FROM samples WHERE run_id = ? ORDER BY n`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var (
			sample Sample
			text   string
			ns     int64
		)
		if err := rows.Scan(&sample.N, &text, &ns); err != nil {
			return nil, err
		}
		sample.Value = storedValue(text)
		sample.Duration = time.Duration(ns)
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// storedValue restores a rendered result; Fibonacci results are Ints
func storedValue(text string) types.Value {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return types.NewInt(i)
	}
	return types.NewStr(text)
}
