// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bank

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/question-bank/pkg/types"
)

// DimensionCount tallies one dimension's questions by option type.
type DimensionCount struct {
	Dimension types.Dimension `json:"dimension"`
	Attitude  int             `json:"attitude"`
	Frequency int             `json:"frequency"`
}

// Total returns the number of questions in the dimension.
func (d DimensionCount) Total() int { return d.Attitude + d.Frequency }

// KindSummary tallies one bank.
type KindSummary struct {
	Kind       types.TestKind   `json:"bank"`
	Total      int              `json:"total"`
	Dimensions []DimensionCount `json:"dimensions"`
}

// Summarize counts each bank's questions per dimension and option type.
// Dimensions appear in ID-range order; all four are always present.
func Summarize(qb types.QuestionBank) []KindSummary {
	summaries := make([]KindSummary, 0, len(types.TestKinds))
	for _, kind := range types.TestKinds {
		dims := types.Dimensions()
		counts := make([]DimensionCount, len(dims))
		index := make(map[types.Dimension]int, len(dims))
		for i, d := range dims {
			counts[i].Dimension = d
			index[d] = i
		}

		questions := qb.Questions(kind)
		for _, q := range questions {
			i, ok := index[q.Dimension]
			if !ok {
				continue
			}
			switch q.OptionType {
			case types.OptionAttitude:
				counts[i].Attitude++
			case types.OptionFrequency:
				counts[i].Frequency++
			}
		}

		summaries = append(summaries, KindSummary{
			Kind:       kind,
			Total:      len(questions),
			Dimensions: counts,
		})
	}
	return summaries
}

// PrintSummary writes summaries as aligned text tables.
func PrintSummary(w io.Writer, version string, summaries []KindSummary) {
	fmt.Fprintf(w, "question bank %s\n", version)
	for _, s := range summaries {
		fmt.Fprintf(w, "\n%s: %d questions\n", s.Kind.Label(), s.Total)
		fmt.Fprintf(w, "  %-10s  %8s  %9s  %5s\n", "Dimension", "Attitude", "Frequency", "Total")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 40))
		for _, d := range s.Dimensions {
			fmt.Fprintf(w, "  %-10s  %8d  %9d  %5d\n", d.Dimension, d.Attitude, d.Frequency, d.Total())
		}
	}
}
