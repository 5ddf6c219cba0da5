package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"codeberg.org/snonux/espada/internal/diagnostics"
	"codeberg.org/snonux/espada/internal/transcoder"
)

// Item is one transcribed batch item
type Item struct {
	Word   string
	Result transcoder.Result
}

// Run is a complete batch run
type Run struct {
	ID             string
	RulesetVersion string
	StartedAt      time.Time
	Items          []Item
	Report         diagnostics.Report
}

// SQLiteSink writes runs to a SQLite database
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path
func OpenSQLite(path string) (*SQLiteSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteSink{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close closes the database
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

func (s *SQLiteSink) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id text PRIMARY KEY,
			ruleset_version text NOT NULL,
			started_at integer NOT NULL,
			successes integer NOT NULL,
			failures integer NOT NULL,
			first_failure_word text,
			first_failure_symbol text
		)`,
		`CREATE TABLE IF NOT EXISTS transcriptions (
			run_id text NOT NULL,
			position integer NOT NULL,
			word text NOT NULL,
			pronunciation text NOT NULL,
			toolkit text NOT NULL,
			failed_symbol text,
			failed_offset integer,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE TABLE IF NOT EXISTS symbol_failures (
			run_id text NOT NULL,
			position integer NOT NULL,
			symbol text NOT NULL,
			word text NOT NULL,
			pronunciation text NOT NULL,
			PRIMARY KEY (run_id, symbol)
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores a run in a single transaction
func (s *SQLiteSink) SaveRun(ctx context.Context, run Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var firstWord, firstSymbol sql.NullString
	if f := run.Report.FirstFailure; f != nil {
		firstWord = sql.NullString{String: f.Word, Valid: true}
		firstSymbol = sql.NullString{String: f.Symbol, Valid: true}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.RulesetVersion,
		run.StartedAt.Unix(),
		run.Report.Successes,
		run.Report.Failures,
		firstWord,
		firstSymbol,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO transcriptions VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, item := range run.Items {
		var symbol sql.NullString
		var offset sql.NullInt64
		if !item.Result.OK() {
			symbol = sql.NullString{String: item.Result.Symbol, Valid: true}
			offset = sql.NullInt64{Int64: int64(item.Result.Offset), Valid: true}
		}

		_, err := stmt.ExecContext(ctx,
			run.ID,
			i,
			item.Word,
			item.Result.Pronunciation,
			item.Result.Toolkit,
			symbol,
			offset,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transcription %d: %w", i, err)
		}
	}

	for i, se := range run.Report.Symbols {
		_, err := tx.ExecContext(ctx, `INSERT INTO symbol_failures VALUES (?, ?, ?, ?, ?)`,
			run.ID, i, se.Symbol, se.Word, se.Pronunciation)
		if err != nil {
			return fmt.Errorf("failed to insert symbol failure: %w", err)
		}
	}

	return tx.Commit()
}

// RunSummary is the stored header of a run
type RunSummary struct {
	ID             string
	RulesetVersion string
	Successes      int
	Failures       int
}

// Runs lists stored runs, oldest first
func (s *SQLiteSink) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ruleset_version, successes, failures FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.RulesetVersion, &r.Successes, &r.Failures); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
