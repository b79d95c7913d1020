package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// wordGapRatio is the horizontal gap, as a fraction of the font size, above
// which two glyphs on a row are treated as separate words.
const wordGapRatio = 0.25

type TextExtractorService interface {
	ExtractText(filename string, data []byte) (string, error)
}

type textExtractorService struct{}

func NewTextExtractorService() TextExtractorService {
	return &textExtractorService{}
}

// IsSupportedFile reports whether the resume filename has one of the accepted
// extensions (.pdf, .docx, .doc), ignoring case.
func IsSupportedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc":
		return true
	}
	return false
}

func (e *textExtractorService) ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDFText(data)
	case ".docx", ".doc":
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrExtraction
	}

	return text, nil
}

func extractPDFText(data []byte) (text string, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: error reading PDF: %v", ErrExtraction, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: error reading PDF: %v", ErrExtraction, err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, pageText(page))
	}

	return strings.Join(pages, "\n"), nil
}

// pageText rebuilds the page line by line: glyphs sharing a baseline form one
// row, rows are emitted top to bottom. Pages without positioned glyphs fall
// back to the library's plain text stream.
func pageText(page pdf.Page) string {
	glyphs := page.Content().Text
	if len(glyphs) == 0 {
		text, _ := page.GetPlainText(nil)
		return text
	}

	rows := make(map[float64][]pdf.Text)
	var baselines []float64
	for _, glyph := range glyphs {
		y := math.Round(glyph.Y)
		if _, ok := rows[y]; !ok {
			baselines = append(baselines, y)
		}
		rows[y] = append(rows[y], glyph)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	lines := make([]string, 0, len(baselines))
	for _, y := range baselines {
		lines = append(lines, joinGlyphs(rows[y]))
	}

	return strings.Join(lines, "\n")
}

// joinGlyphs orders a row left to right, keeping draw order for glyphs at the
// same x, and puts a space where the gap between glyphs looks like one.
func joinGlyphs(glyphs []pdf.Text) string {
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].X < glyphs[j].X
	})

	var line strings.Builder
	for i, glyph := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			gap := glyph.X - (prev.X + prev.W)
			if gap > glyph.FontSize*wordGapRatio && prev.S != " " && glyph.S != " " {
				line.WriteByte(' ')
			}
		}
		line.WriteString(glyph.S)
	}

	return line.String()
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: error reading DOCX: %v", ErrExtraction, err)
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: error reading DOCX: %v", ErrExtraction, err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// docxParagraphs walks word/document.xml and returns the text of every w:p
// element. Paragraphs nested in text boxes are emitted when they close, before
// the paragraph that contains them.
func docxParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		open       []*strings.Builder
		inText     bool
	)

	current := func() *strings.Builder {
		if len(open) == 0 {
			return nil
		}
		return open[len(open)-1]
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch el := token.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "t":
				inText = true
			case "tab":
				if b := current(); b != nil {
					b.WriteByte('\t')
				}
			case "br", "cr":
				if b := current(); b != nil {
					b.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if b := current(); b != nil {
					paragraphs = append(paragraphs, b.String())
					open = open[:len(open)-1]
				}
			}
		case xml.CharData:
			if b := current(); inText && b != nil {
				b.Write(el)
			}
		}
	}

	return paragraphs, nil
}
