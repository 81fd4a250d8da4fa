// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store keeps question banks in a SQLite database so that questions
// can be looked up by bank, dimension, option type, or wording.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/question-bank/pkg/types"
)

const (
	// DefaultDBPath is used when StoreConfig.DBPath is empty.
	DefaultDBPath = "output/questions.db"

	defaultMaxResults = 50
	metaVersion       = "version"
)

// Store manages the question database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the database at cfg.DBPath and ensures the
// schema exists.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
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
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS options (
			option_type TEXT NOT NULL,
			option_id INTEGER NOT NULL,
			content TEXT NOT NULL,
			score INTEGER NOT NULL,
			PRIMARY KEY (option_type, option_id)
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			kind TEXT NOT NULL,
			question_id INTEGER NOT NULL,
			dimension TEXT NOT NULL,
			content TEXT NOT NULL,
			option_type TEXT NOT NULL,
			PRIMARY KEY (kind, question_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_dimension ON questions(dimension)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_option_type ON questions(option_type)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds per-bank counts from an ingest run.
type IngestSummary struct {
	Self  int
	Lover int
}

// Total returns the number of questions stored.
func (s IngestSummary) Total() int { return s.Self + s.Lover }

// Ingest replaces the stored bank with qb in a single transaction. Each
// bank's previous rows are removed first; duplicate IDs within a bank keep
// the last occurrence.
func (s *Store) Ingest(ctx context.Context, qb types.QuestionBank, w io.Writer) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		metaVersion, qb.Version,
	); err != nil {
		return IngestSummary{}, fmt.Errorf("recording version: %w", err)
	}

	if err := upsertOptions(ctx, tx); err != nil {
		return IngestSummary{}, err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO questions (kind, question_id, dimension, content, option_type)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var summary IngestSummary
	for _, kind := range types.TestKinds {
		if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE kind = ?`, string(kind)); err != nil {
			return IngestSummary{}, fmt.Errorf("clearing %s questions: %w", kind, err)
		}

		questions := qb.Questions(kind)
		for _, q := range questions {
			if _, err := stmt.ExecContext(ctx,
				string(kind), q.QuestionID, string(q.Dimension), q.QuestionContent, string(q.OptionType),
			); err != nil {
				return IngestSummary{}, fmt.Errorf("inserting %s question %d: %w", kind, q.QuestionID, err)
			}
		}
		fmt.Fprintf(w, "indexed %s: %d questions\n", kind.Label(), len(questions))

		switch kind {
		case types.TestSelf:
			summary.Self = len(questions)
		case types.TestLover:
			summary.Lover = len(questions)
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// upsertOptions stores both fixed option sets.
func upsertOptions(ctx context.Context, tx *sql.Tx) error {
	for _, ot := range []types.OptionType{types.OptionAttitude, types.OptionFrequency} {
		for _, o := range ot.Options() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO options (option_type, option_id, content, score) VALUES (?, ?, ?, ?)
				 ON CONFLICT(option_type, option_id) DO UPDATE SET content=excluded.content, score=excluded.score`,
				string(ot), o.OptionID, o.OptionContent, o.Score,
			)
			if err != nil {
				return fmt.Errorf("storing %s option %d: %w", ot, o.OptionID, err)
			}
		}
	}
	return nil
}
