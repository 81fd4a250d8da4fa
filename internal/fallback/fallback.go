// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fallback provides the static question tables substituted for a
// source document that cannot be read.
package fallback

import (
	"embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/question-bank/pkg/types"
)

//go:embed data/*.yaml
var tables embed.FS

// entry is one row of an embedded table.
type entry struct {
	ID      int              `yaml:"id"`
	Content string           `yaml:"content"`
	Type    types.OptionType `yaml:"type"`
}

// Questions returns the static question list for kind, with dimensions
// derived from the question IDs and options taken from the shared sets.
func Questions(kind types.TestKind) ([]types.Question, error) {
	name := fmt.Sprintf("data/%s.yaml", kind)
	data, err := tables.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no fallback table for %q: %w", kind, err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}

	questions := make([]types.Question, 0, len(entries))
	for _, e := range entries {
		if !e.Type.Valid() {
			return nil, fmt.Errorf("%s: question %d has unknown option type %q", name, e.ID, e.Type)
		}
		q, ok := types.NewQuestion(e.ID, e.Content, e.Type)
		if !ok {
			return nil, fmt.Errorf("%s: question %d has no dimension", name, e.ID)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
