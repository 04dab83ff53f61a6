// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tracking persists run, step, and cost records in a local SQLite
// database and answers the aggregate queries behind the usage report.
package tracking

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBFile is the default tracking database filename under the logs dir.
const DBFile = "tracking.db"

// Store manages the tracking SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the tracking database at dbPath, creating parent
// directories and the schema as needed.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating tracking directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening tracking database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic TEXT NOT NULL,
			audience TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			sections INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS steps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			output_chars INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_steps_run_id ON steps(run_id)`,
		`CREATE TABLE IF NOT EXISTS estimates (
			run_id INTEGER PRIMARY KEY REFERENCES runs(id),
			model TEXT NOT NULL,
			calls INTEGER NOT NULL,
			input_tokens INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			cost_usd REAL NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run is an open tracking handle for one guide creation run. Call counts
// and token totals accumulate in memory and are flushed by Finish.
type Run struct {
	store *Store
	id    int64

	model        string
	calls        int64
	inputTokens  int64
	outputTokens int64
	costUSD      float64
}

// StartRun inserts a new run row and returns its handle.
func (s *Store) StartRun(ctx context.Context, topic, audience string) (*Run, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (topic, audience, started_at) VALUES (?, ?, ?)`,
		topic, audience, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading run id: %w", err)
	}
	return &Run{store: s, id: id}, nil
}

// RecordStep persists one completed step.
func (r *Run) RecordStep(ctx context.Context, name string, d time.Duration, outputChars int) error {
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO steps (run_id, name, duration_ms, output_chars, created_at) VALUES (?, ?, ?, ?, ?)`,
		r.id, name, d.Milliseconds(), outputChars, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("inserting step: %w", err)
	}
	return nil
}

// RecordCall accumulates token counts and cost for one model call.
func (r *Run) RecordCall(model string, inputTokens, outputTokens int64) {
	r.model = model
	r.calls++
	r.inputTokens += inputTokens
	r.outputTokens += outputTokens
	r.costUSD += CallCost(model, inputTokens, outputTokens)
}

// Finish closes the run row and flushes the accumulated estimate.
func (r *Run) Finish(ctx context.Context, sections int) error {
	_, err := r.store.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, sections = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), sections, r.id)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}

	if r.calls > 0 {
		_, err = r.store.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO estimates (run_id, model, calls, input_tokens, output_tokens, cost_usd)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.id, r.model, r.calls, r.inputTokens, r.outputTokens, r.costUSD)
		if err != nil {
			return fmt.Errorf("writing estimate: %w", err)
		}
	}
	return nil
}

// RunSummary is one row of the usage report.
type RunSummary struct {
	ID         int64   `json:"id"`
	Topic      string  `json:"topic"`
	Audience   string  `json:"audience"`
	StartedAt  string  `json:"started_at"`
	FinishedAt string  `json:"finished_at,omitempty"`
	Sections   int     `json:"sections"`
	Model      string  `json:"model,omitempty"`
	Calls      int64   `json:"calls"`
	CostUSD    float64 `json:"cost_usd"`
}

// Summaries returns every recorded run, most recent first.
func (s *Store) Summaries(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.topic, r.audience, r.started_at,
		       COALESCE(r.finished_at, ''), COALESCE(r.sections, 0),
		       COALESCE(e.model, ''), COALESCE(e.calls, 0), COALESCE(e.cost_usd, 0)
		FROM runs r
		LEFT JOIN estimates e ON e.run_id = r.id
		ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Topic, &r.Audience, &r.StartedAt,
			&r.FinishedAt, &r.Sections, &r.Model, &r.Calls, &r.CostUSD); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Totals aggregates calls and estimated cost across all runs.
type Totals struct {
	Runs    int64   `json:"runs"`
	Calls   int64   `json:"calls"`
	CostUSD float64 `json:"cost_usd"`
}

// Total returns the aggregate usage across all recorded runs.
func (s *Store) Total(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(r.id), COALESCE(SUM(e.calls), 0), COALESCE(SUM(e.cost_usd), 0)
		FROM runs r
		LEFT JOIN estimates e ON e.run_id = r.id`).
		Scan(&t.Runs, &t.Calls, &t.CostUSD)
	if err != nil {
		return Totals{}, fmt.Errorf("querying totals: %w", err)
	}
	return t, nil
}
