// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/question-bank/pkg/types"
)

// DefaultOutput is the bank file the quiz application loads.
const DefaultOutput = "questionBank.json"

// FormatFor returns format when set, otherwise the format implied by the
// extension of path. Anything other than .yaml/.yml is JSON.
func FormatFor(path string, format types.OutputFormat) types.OutputFormat {
	if format != "" {
		return format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return types.OutputYAML
	}
	return types.OutputJSON
}

// Encode writes qb to w. JSON output uses two-space indentation and leaves
// non-ASCII text unescaped.
func Encode(w io.Writer, qb types.QuestionBank, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(qb); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(qb); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q: use json or yaml", format)
}

// Decode reads a bank in the given format from r.
func Decode(r io.Reader, format types.OutputFormat) (types.QuestionBank, error) {
	var qb types.QuestionBank
	switch format {
	case types.OutputJSON, "":
		if err := json.NewDecoder(r).Decode(&qb); err != nil {
			return qb, fmt.Errorf("decoding JSON: %w", err)
		}
	case types.OutputYAML:
		if err := yaml.NewDecoder(r).Decode(&qb); err != nil {
			return qb, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return qb, fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	return qb, nil
}

// Write encodes qb into the file at path, creating parent directories.
func Write(path string, qb types.QuestionBank, format types.OutputFormat) error {
	var buf bytes.Buffer
	if err := Encode(&buf, qb, FormatFor(path, format)); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a bank file, choosing the decoder from the extension.
func Load(path string) (types.QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.QuestionBank{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	qb, err := Decode(f, FormatFor(path, ""))
	if err != nil {
		return qb, fmt.Errorf("%s: %w", path, err)
	}
	return qb, nil
}
