// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bank assembles the question bank from the two source documents
// and reads and writes bank files.
package bank

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/question-bank/internal/document"
	"github.com/pdiddy/question-bank/internal/extract"
	"github.com/pdiddy/question-bank/internal/fallback"
	"github.com/pdiddy/question-bank/pkg/types"
)

// errNoSource is reported when a bank has no document configured.
var errNoSource = errors.New("no source document configured")

// New returns an empty bank at the current version.
func New() types.QuestionBank {
	return types.QuestionBank{
		Version:            types.BankVersion,
		SelfTestQuestions:  []types.Question{},
		LoverTestQuestions: []types.Question{},
	}
}

// SourceResult records how one bank's questions were obtained.
type SourceResult struct {
	Kind     types.TestKind
	Path     string
	Count    int
	Fallback bool
	// Err is the read failure that triggered the fallback, if any.
	Err error
}

// Report holds the per-source outcome of a build.
type Report struct {
	Sources []SourceResult
}

// FallbackCount returns the number of sources replaced by static tables.
func (r Report) FallbackCount() int {
	n := 0
	for _, s := range r.Sources {
		if s.Fallback {
			n++
		}
	}
	return n
}

// Builder reads each source document and extracts its questions. A document
// that cannot be read is replaced by the static table for its bank; the
// failure is logged and never returned.
type Builder struct {
	Reader document.Reader
	Logger *zap.Logger
	// Out receives one progress line per source.
	Out io.Writer
}

// Build produces the bank for cfg. It fails only when a static table
// cannot be loaded.
func (b *Builder) Build(ctx context.Context, cfg types.BuildConfig) (types.QuestionBank, Report, error) {
	log := b.Logger
	if log == nil {
		log = zap.NewNop()
	}
	out := b.Out
	if out == nil {
		out = io.Discard
	}

	qb := New()
	var report Report
	if err := ctx.Err(); err != nil {
		return qb, report, err
	}

	// Both documents are read concurrently; results are reported in bank order.
	type read struct {
		questions []types.Question
		err       error
	}
	reads := make([]read, len(types.TestKinds))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, kind := range types.TestKinds {
		i, kind := i, kind
		eg.Go(func() error {
			qs, err := b.readSource(egCtx, cfg.Source(kind))
			reads[i] = read{questions: qs, err: err}
			return nil
		})
	}
	_ = eg.Wait()
	if err := ctx.Err(); err != nil {
		return qb, report, err
	}

	for i, kind := range types.TestKinds {
		res := SourceResult{Kind: kind, Path: cfg.Source(kind)}
		questions, readErr := reads[i].questions, reads[i].err
		if readErr != nil {
			log.Warn("source document unreadable, using fallback table",
				zap.String("bank", string(kind)),
				zap.String("path", res.Path),
				zap.Error(readErr))

			var err error
			questions, err = fallback.Questions(kind)
			if err != nil {
				return qb, report, fmt.Errorf("loading fallback for %s: %w", kind.Label(), err)
			}
			res.Fallback = true
			res.Err = readErr
			fmt.Fprintf(out, "fallback: %d %s questions (%s)\n", len(questions), kind.Label(), res.Path)
		} else {
			if len(questions) == 0 {
				log.Warn("no questions found in source document",
					zap.String("bank", string(kind)),
					zap.String("path", res.Path))
			}
			log.Debug("extracted questions",
				zap.String("bank", string(kind)),
				zap.String("path", res.Path),
				zap.Int("count", len(questions)))
			fmt.Fprintf(out, "parsed %d %s questions from %s\n", len(questions), kind.Label(), res.Path)
		}

		res.Count = len(questions)
		report.Sources = append(report.Sources, res)
		qb = qb.WithQuestions(kind, questions)
	}

	return qb, report, nil
}

func (b *Builder) readSource(ctx context.Context, path string) ([]types.Question, error) {
	if path == "" {
		return nil, errNoSource
	}
	if b.Reader == nil {
		return nil, errors.New("no document reader configured")
	}
	text, err := b.Reader.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return extract.Extract(text), nil
}
