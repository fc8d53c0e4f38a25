// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a SQLite history of extraction runs so the section
// structure of a help text can be compared across tool versions.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/helpsplit/pkg/types"
)

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Run summarizes one recorded extraction run.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	TotalLines   int       `json:"total_lines"`
	MainCount    int       `json:"main_count"`
	ActionCount  int       `json:"action_count"`
	FilesWritten int       `json:"files_written"`
}

// Open opens or creates the history database at dbPath and creates the
// schema if it does not exist. Parent directories are created as needed.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			total_lines INTEGER NOT NULL,
			main_count INTEGER NOT NULL,
			action_count INTEGER NOT NULL,
			files_written INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_sections (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			label TEXT,
			start_line INTEGER NOT NULL,
			end_line INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_sections_run_id ON run_sections(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts one run and all its sections in a single transaction
// and returns the new run's ID.
func (s *Store) RecordRun(ctx context.Context, st *types.Structure, totalLines, filesWritten int) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, total_lines, main_count, action_count, files_written)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), totalLines, len(st.Main), len(st.Actions), filesWritten)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for _, rec := range st.Records() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO run_sections (run_id, name, kind, label, start_line, end_line)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			id, rec.Name, string(rec.Kind), rec.Label, rec.StartLine, rec.EndLine)
		if err != nil {
			return "", fmt.Errorf("inserting section %q: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, total_lines, main_count, action_count, files_written
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.TotalLines, &r.MainCount, &r.ActionCount, &r.FilesWritten); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", createdAt, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunSections returns one run's sections in start-line order. A run with
// zero sections (empty input) yields an empty slice, not an error.
func (s *Store) RunSections(ctx context.Context, runID string) ([]types.SectionRecord, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("looking up run: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("run %s not found", runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, kind, label, start_line, end_line
		 FROM run_sections WHERE run_id = ? ORDER BY start_line`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	defer rows.Close()

	var sections []types.SectionRecord
	for rows.Next() {
		var rec types.SectionRecord
		var kind string
		var label sql.NullString
		if err := rows.Scan(&rec.Name, &kind, &label, &rec.StartLine, &rec.EndLine); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		rec.Kind = types.SectionKind(kind)
		rec.Label = label.String
		sections = append(sections, rec)
	}
	return sections, rows.Err()
}
