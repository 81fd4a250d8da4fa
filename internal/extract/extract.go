// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract classifies the paragraphs of a question-bank document into
// dimensioned questions with inferred option types.
//
// Lines that are not question headers, and headers whose number falls
// outside every dimension range, produce no question. The extractor never
// fails; a malformed document yields fewer questions, not an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/question-bank/pkg/types"
)

// lookahead is the number of lines, starting at the header itself, searched
// for option markers.
const lookahead = 10

// headerRe matches "<n>.<content>" on a trimmed line.
var headerRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

var (
	// attitudeMarkers are the extreme labels of the agreement scale.
	attitudeMarkers = []string{"非常不同意", "非常同意"}

	// frequencyMarkers are the extreme labels of the frequency scale.
	frequencyMarkers = []string{"从不", "总是"}

	// frequencyKeywords suggest a frequency question when no marker is
	// present near the header.
	frequencyKeywords = []string{"会", "经常", "偶尔", "总是", "从不"}
)

// Extract splits text on newlines and classifies the result.
// See ExtractLines.
func Extract(text string) []types.Question {
	return ExtractLines(strings.Split(text, "\n"))
}

// ExtractLines scans lines in order and returns one Question per header line
// whose number has a dimension. The result is never nil.
func ExtractLines(lines []string) []types.Question {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			kept = append(kept, l)
		}
	}

	questions := make([]types.Question, 0)
	for i, line := range kept {
		id, content, ok := ParseHeader(line)
		if !ok {
			continue
		}

		end := min(i+lookahead, len(kept))
		optionType, found := markerType(kept[i:end])
		if !found {
			optionType = keywordType(content)
		}

		q, ok := types.NewQuestion(id, content, optionType)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// ParseHeader reports whether line is a question header and returns its
// number and trimmed content. Numbers too large for an int are rejected.
func ParseHeader(line string) (int, string, bool) {
	m := headerRe.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return 0, "", false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	return id, strings.TrimSpace(m[2]), true
}

// markerType returns the option type of the first line in window that
// carries a scale marker. Attitude markers are checked before frequency
// markers on each line.
func markerType(window []string) (types.OptionType, bool) {
	for _, line := range window {
		if containsAny(line, attitudeMarkers) {
			return types.OptionAttitude, true
		}
		if containsAny(line, frequencyMarkers) {
			return types.OptionFrequency, true
		}
	}
	return "", false
}

// keywordType infers the option type from the question wording alone.
func keywordType(content string) types.OptionType {
	if containsAny(content, frequencyKeywords) {
		return types.OptionFrequency
	}
	return types.OptionAttitude
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
