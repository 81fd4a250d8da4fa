// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/question-bank/pkg/types"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const docFooter = `</w:body></w:document>`

// writeDocx creates a minimal .docx package whose body is the given XML.
func writeDocx(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = io.WriteString(w, `<?xml version="1.0"?><Types/>`)
	require.NoError(t, err)

	w, err = zw.Create(bodyPart)
	require.NoError(t, err)
	_, err = io.WriteString(w, docHeader+body+docFooter)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

func para(runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	for _, r := range runs {
		b.WriteString("<w:r>" + r + "</w:r>")
	}
	b.WriteString("</w:p>")
	return b.String()
}

func text(s string) string { return "<w:t xml:space=\"preserve\">" + s + "</w:t>" }

func TestOOXMLReader(t *testing.T) {
	body := para(text("1. "), text("我希望了解伴侣的一切")) +
		para() +
		para(text("   ")) +
		para(text("非常不同意"), "<w:tab/>", text("非常同意")) +
		para(text("第一行"), "<w:br/>", text("第二行"))

	got, err := OOXMLReader{}.Read(context.Background(), writeDocx(t, body))
	require.NoError(t, err)

	want := "1. 我希望了解伴侣的一切\n非常不同意\t非常同意\n第一行\n第二行"
	assert.Equal(t, want, got)
}

func TestOOXMLReader_SkipsTables(t *testing.T) {
	body := para(text("2. 表格之前")) +
		"<w:tbl><w:tr><w:tc>" + para(text("单元格内容")) + "</w:tc></w:tr></w:tbl>" +
		para(text("3. 表格之后"))

	got, err := OOXMLReader{}.Read(context.Background(), writeDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, "2. 表格之前\n3. 表格之后", got)
}

func TestOOXMLReader_IgnoresOtherNamespaces(t *testing.T) {
	body := `<w:p><w:r><w:t>正文</w:t></w:r>` +
		`<m:oMath xmlns:m="urn:example:math"><m:t>x</m:t></m:oMath></w:p>`

	got, err := OOXMLReader{}.Read(context.Background(), writeDocx(t, body))
	require.NoError(t, err)
	assert.Equal(t, "正文", got)
}

func TestOOXMLReader_Errors(t *testing.T) {
	dir := t.TempDir()

	notZip := filepath.Join(dir, "plain.docx")
	require.NoError(t, os.WriteFile(notZip, []byte("not a zip"), 0o644))
	_, err := OOXMLReader{}.Read(context.Background(), notZip)
	assert.Error(t, err)

	_, err = OOXMLReader{}.Read(context.Background(), filepath.Join(dir, "missing.docx"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.docx")
	f, err := os.Create(empty)
	require.NoError(t, err)
	require.NoError(t, zip.NewWriter(f).Close())
	require.NoError(t, f.Close())
	_, err = OOXMLReader{}.Read(context.Background(), empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bodyPart)
}

func TestTextReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.txt")
	require.NoError(t, os.WriteFile(path, []byte("\ufeff1. 题目\r\n\r\n  总是  \r\n"), 0o644))

	got, err := TextReader{}.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "1. 题目\n  总是  ", got)
}

func TestAutoReader(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	md := filepath.Join(dir, "bank.MD")
	require.NoError(t, os.WriteFile(md, []byte("3. 题目\n"), 0o644))
	got, err := NewAutoReader().Read(ctx, md)
	require.NoError(t, err)
	assert.Equal(t, "3. 题目", got)

	docx := writeDocx(t, para(text("4. 题目")))
	got, err = NewAutoReader().Read(ctx, docx)
	require.NoError(t, err)
	assert.Equal(t, "4. 题目", got)

	_, err = NewAutoReader().Read(ctx, filepath.Join(dir, "bank.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported document type")
}

func TestNewReader(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		backend types.DocumentBackend
		want    Reader
	}{
		{types.BackendOOXML, OOXMLReader{}},
		{types.BackendText, TextReader{}},
	}
	for _, tt := range tests {
		r, err := NewReader(ctx, tt.backend)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r)
	}

	r, err := NewReader(ctx, "")
	require.NoError(t, err)
	assert.IsType(t, &AutoReader{}, r)

	_, err = NewReader(ctx, "pandoc")
	assert.Error(t, err)
}

// fakeRuntime satisfies container.Runtime without a container engine.
type fakeRuntime struct {
	imageErr error
	output   string
	runErr   error
	gotArgs  []string
	gotInput string
}

func (f *fakeRuntime) Name() string { return "fake" }

func (f *fakeRuntime) Available(context.Context) bool { return true }

func (f *fakeRuntime) ImageExists(context.Context, string) error { return f.imageErr }

func (f *fakeRuntime) Run(_ context.Context, _ string, args []string, stdin io.Reader, stdout io.Writer) error {
	f.gotArgs = args
	data, _ := io.ReadAll(stdin)
	f.gotInput = string(data)
	if f.runErr != nil {
		return f.runErr
	}
	_, err := io.WriteString(stdout, f.output)
	return err
}

func TestMarkitdownReader(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bank.doc")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	rt := &fakeRuntime{output: "# 题库\r\n\r\n1. 题目\r\n"}
	r, err := NewMarkitdownReader(ctx, rt)
	require.NoError(t, err)

	got, err := r.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "# 题库\n1. 题目", got)
	assert.Equal(t, []string{"-x", "doc"}, rt.gotArgs)
	assert.Equal(t, "binary", rt.gotInput)
}

func TestMarkitdownReader_Failures(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bank.doc")
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))

	_, err := NewMarkitdownReader(ctx, &fakeRuntime{imageErr: errors.New("no image")})
	assert.Error(t, err)

	r, err := NewMarkitdownReader(ctx, &fakeRuntime{runErr: errors.New("exit 1")})
	require.NoError(t, err)
	_, err = r.Read(ctx, path)
	assert.Error(t, err)

	r, err = NewMarkitdownReader(ctx, &fakeRuntime{})
	require.NoError(t, err)
	_, err = r.Read(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty output")
}
