package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"strings"
	"testing"
)

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

// buildDocx zips a minimal Word document with one w:p per paragraph.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		var escaped bytes.Buffer
		if err := xml.EscapeText(&escaped, []byte(p)); err != nil {
			t.Fatalf("escape paragraph: %v", err)
		}
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.Write(escaped.Bytes())
		body.WriteString(`</w:t></w:r></w:p>`)
	}

	return zipDocx(t, body.String())
}

func zipDocx(t *testing.T, bodyXML string) []byte {
	t.Helper()

	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		bodyXML + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": docxRels,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	return buf.Bytes()
}

type fakeGemini struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

type fakeObjectStore struct {
	enabled bool
	err     error
	puts    map[string]string
}

func (f *fakeObjectStore) PutJobDescription(_ context.Context, requestID, jobDescription string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.puts == nil {
		f.puts = make(map[string]string)
	}
	key := JobDescriptionKey(requestID)
	f.puts[key] = jobDescription
	return key, nil
}

func (f *fakeObjectStore) Enabled() bool {
	return f.enabled
}

// nonEmptyLines returns the trimmed non-blank lines of text.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
