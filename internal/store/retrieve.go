// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/question-bank/pkg/types"
)

// QueryOptions filters stored questions. Zero fields do not filter.
type QueryOptions struct {
	Kind       types.TestKind
	Dimension  types.Dimension
	OptionType types.OptionType

	// Query matches questions whose content contains the text.
	Query string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// QueryResult is a stored question together with its bank.
type QueryResult struct {
	Kind           types.TestKind `json:"bank" yaml:"bank"`
	types.Question `yaml:",inline"`
}

// Retrieve returns matching questions ordered by bank and question ID.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT kind, question_id, dimension, content, option_type FROM questions WHERE 1=1`)

	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.Dimension != "" {
		qb.WriteString(` AND dimension = ?`)
		args = append(args, string(opts.Dimension))
	}
	if opts.OptionType != "" {
		qb.WriteString(` AND option_type = ?`)
		args = append(args, string(opts.OptionType))
	}
	if opts.Query != "" {
		qb.WriteString(` AND instr(content, ?) > 0`)
		args = append(args, opts.Query)
	}

	// "self" sorts before "lover" in output order.
	qb.WriteString(` ORDER BY CASE kind WHEN 'self' THEN 0 ELSE 1 END, question_id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr                         QueryResult
			kind, dim, content, optTyp string
			id                         int
		)
		if err := rows.Scan(&kind, &id, &dim, &content, &optTyp); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		qr.Kind = types.TestKind(kind)
		qr.Question = types.Question{
			QuestionID:      id,
			Dimension:       types.Dimension(dim),
			QuestionContent: content,
			OptionType:      types.OptionType(optTyp),
			Options:         types.OptionType(optTyp).Options(),
		}
		results = append(results, qr)
	}
	return results, rows.Err()
}

// LoadBank rebuilds the stored bank. Options come from the shared sets.
func (s *Store) LoadBank(ctx context.Context) (types.QuestionBank, error) {
	qb := types.QuestionBank{
		SelfTestQuestions:  []types.Question{},
		LoverTestQuestions: []types.Question{},
	}

	err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, metaVersion).Scan(&qb.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return qb, errors.New("no question bank has been ingested")
	}
	if err != nil {
		return qb, fmt.Errorf("reading version: %w", err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM questions`).Scan(&total); err != nil {
		return qb, fmt.Errorf("counting questions: %w", err)
	}

	results, err := s.Retrieve(ctx, QueryOptions{MaxResults: max(total, 1)})
	if err != nil {
		return qb, err
	}
	for _, r := range results {
		qb = qb.WithQuestions(r.Kind, append(qb.Questions(r.Kind), r.Question))
	}
	return qb, nil
}
