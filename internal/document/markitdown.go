// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/question-bank/internal/container"
)

const imageMarkitdown = "markitdown:latest"

// MarkitdownReader converts documents by piping them through the markitdown
// container image. It covers formats the native readers do not, such as
// legacy .doc and PDF.
type MarkitdownReader struct {
	runtime container.Runtime
}

// NewMarkitdownReader verifies that the markitdown image exists in rt.
func NewMarkitdownReader(ctx context.Context, rt container.Runtime) (*MarkitdownReader, error) {
	if err := rt.ImageExists(ctx, imageMarkitdown); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownReader{runtime: rt}, nil
}

// Read streams the file at path into the container, passing its extension
// as a format hint, and returns the non-blank output lines.
func (m *MarkitdownReader) Read(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var args []string
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		args = []string{"-x", strings.ToLower(ext)}
	}

	var out bytes.Buffer
	if err := m.runtime.Run(ctx, imageMarkitdown, args, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with markitdown: %w", path, err)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("markitdown produced empty output for %s", path)
	}

	text := strings.ReplaceAll(out.String(), "\r\n", "\n")
	return joinParagraphs(strings.Split(text, "\n")), nil
}
