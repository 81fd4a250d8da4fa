// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document turns question-bank source documents into plain text,
// one paragraph per line, with pluggable backends.
package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/question-bank/internal/container"
	"github.com/pdiddy/question-bank/pkg/types"
)

// Reader extracts the paragraph text of a document. Implementations return
// the non-blank paragraphs joined by "\n".
type Reader interface {
	Read(ctx context.Context, path string) (string, error)
}

// NewReader builds the reader for backend. An empty backend means auto.
// The markitdown backend requires a working container runtime.
func NewReader(ctx context.Context, backend types.DocumentBackend) (Reader, error) {
	switch backend {
	case types.BackendAuto, "":
		return NewAutoReader(), nil
	case types.BackendOOXML:
		return OOXMLReader{}, nil
	case types.BackendText:
		return TextReader{}, nil
	case types.BackendMarkitdown:
		rt, err := container.Detect(ctx)
		if err != nil {
			return nil, err
		}
		return NewMarkitdownReader(ctx, rt)
	}
	return nil, fmt.Errorf("unknown document backend %q: use auto, ooxml, text, or markitdown", backend)
}

// AutoReader picks a reader from the file extension.
type AutoReader struct {
	byExt map[string]Reader
}

// NewAutoReader handles .docx natively and .txt/.md as plain text.
func NewAutoReader() *AutoReader {
	return &AutoReader{byExt: map[string]Reader{
		".docx": OOXMLReader{},
		".txt":  TextReader{},
		".text": TextReader{},
		".md":   TextReader{},
	}}
}

// Read dispatches to the reader registered for the extension of path.
func (a *AutoReader) Read(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	r, ok := a.byExt[ext]
	if !ok {
		return "", fmt.Errorf("unsupported document type %q for %s", ext, path)
	}
	return r.Read(ctx, path)
}

// TextReader reads UTF-8 text files. CRLF line endings and a leading byte
// order mark are tolerated.
type TextReader struct{}

// Read returns the non-blank lines of the file at path.
func (TextReader) Read(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return joinParagraphs(strings.Split(text, "\n")), nil
}

// joinParagraphs drops blank paragraphs and joins the rest with newlines.
// Kept paragraphs are not trimmed.
func joinParagraphs(paras []string) string {
	kept := make([]string, 0, len(paras))
	for _, p := range paras {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}
