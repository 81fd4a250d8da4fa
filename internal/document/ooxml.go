// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// bodyPart is the main document part inside a .docx package.
	bodyPart = "word/document.xml"
	// wordNS is the WordprocessingML namespace.
	wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// OOXMLReader reads the body paragraphs of a .docx file. Paragraphs inside
// tables are not part of the body and are skipped.
type OOXMLReader struct{}

// Read opens the package at path and returns its paragraph text.
func (OOXMLReader) Read(_ context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()

	f, err := zr.Open(bodyPart)
	if err != nil {
		return "", fmt.Errorf("%s: missing %s: %w", path, bodyPart, err)
	}
	defer f.Close()

	paras, err := paragraphs(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return joinParagraphs(paras), nil
}

// paragraphs walks document.xml and returns the text of each top-level
// body paragraph. Runs contribute w:t text; w:tab becomes a tab and
// w:br/w:cr a newline.
func paragraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		out        []string
		cur        strings.Builder
		tableDepth int
		paraDepth  int
		inText     bool
	)
	collecting := func() bool { return tableDepth == 0 && paraDepth > 0 }

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", bodyPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					if paraDepth == 0 {
						cur.Reset()
					}
					paraDepth++
				}
			case "t":
				inText = true
			case "tab":
				if collecting() {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if collecting() {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if tableDepth == 0 && paraDepth > 0 {
					paraDepth--
					if paraDepth == 0 {
						out = append(out, cur.String())
					}
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && collecting() {
				cur.Write(t)
			}
		}
	}
	return out, nil
}
