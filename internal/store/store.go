// Package store records batch summary rows in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	function TEXT NOT NULL,
	reference TEXT NOT NULL,
	candidate TEXT NOT NULL,
	status TEXT NOT NULL,
	rating TEXT,
	match_rate REAL,
	inaccuracy_rate REAL,
	mismatch_rate REAL,
	report TEXT,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_results_function ON results(function);
CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
`

// Row is one cell of a batch summary.
type Row struct {
	RunID     string
	Function  string
	Reference string // slug of the reference function
	Candidate string // slug of the candidate function
	Status    string // ok, n/a, error
	Rating    string

	MatchRate      float64
	InaccuracyRate float64
	MismatchRate   float64

	// Report is the report file name relative to the data directory.
	Report    string
	CreatedAt time.Time
}

// Store is an open history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts rows in one transaction.
func (s *Store) Record(ctx context.Context, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, function, reference, candidate, status, rating,
			match_rate, inaccuracy_rate, mismatch_rate, report, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		created := r.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		_, err := stmt.ExecContext(ctx, r.RunID, r.Function, r.Reference, r.Candidate, r.Status, r.Rating,
			r.MatchRate, r.InaccuracyRate, r.MismatchRate, r.Report, created.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert %s/%s: %w", r.Function, r.Candidate, err)
		}
	}
	return tx.Commit()
}

// Query filters History.
type Query struct {
	// Function restricts rows to one function when set.
	Function string
	// RunID restricts rows to one run when set.
	RunID string
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// History returns matching rows, newest first.
func (s *Store) History(ctx context.Context, q Query) ([]Row, error) {
	query := `SELECT run_id, function, reference, candidate, status, rating,
		match_rate, inaccuracy_rate, mismatch_rate, report, created_at
		FROM results WHERE 1 = 1`
	var args []any
	if q.Function != "" {
		query += " AND function = ?"
		args = append(args, q.Function)
	}
	if q.RunID != "" {
		query += " AND run_id = ?"
		args = append(args, q.RunID)
	}
	query += " ORDER BY id DESC"
	if q.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, q.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var rating, report sql.NullString
		var created string
		if err := rows.Scan(&r.RunID, &r.Function, &r.Reference, &r.Candidate, &r.Status, &rating,
			&r.MatchRate, &r.InaccuracyRate, &r.MismatchRate, &report, &created); err != nil {
			return nil, fmt.Errorf("failed to scan history: %w", err)
		}
		r.Rating, r.Report = rating.String, report.String
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("bad created_at %q: %w", created, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
