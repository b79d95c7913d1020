package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points, US Letter.
const (
	pageMargin = 40.0
	lineHeight = 14.0
	fontFamily = "Helvetica"
	fontSize   = 12.0
)

type PDFRendererService interface {
	Render(text string) ([]byte, error)
}

type pdfRendererService struct{}

func NewPDFRendererService() PDFRendererService {
	return &pdfRendererService{}
}

// Render writes one input line per baseline starting at the top-left margin
// and breaks to a new page when the next baseline would enter the bottom
// margin. Lines are not wrapped.
func (p *pdfRendererService) Render(text string) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.SetFont(fontFamily, "", fontSize)
	translate := doc.UnicodeTranslatorFromDescriptor("")

	_, pageHeight := doc.GetPageSize()
	doc.AddPage()

	y := pageMargin
	unmapped := 0
	for _, line := range strings.Split(text, "\n") {
		if y > pageHeight-pageMargin {
			doc.AddPage()
			y = pageMargin
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			unmapped += unmappedRunes(translate, line)
			doc.Text(pageMargin, y, translate(line))
		}
		y += lineHeight
	}

	if unmapped > 0 {
		log.Printf("⚠️  %d characters outside cp1252 rendered as '.'\n", unmapped)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// unmappedRunes counts the runes the core font translator replaces with '.'.
func unmappedRunes(translate func(string) string, line string) int {
	n := 0
	for _, r := range line {
		if r < utf8.RuneSelf || r == '.' {
			continue
		}
		if translate(string(r)) == "." {
			n++
		}
	}
	return n
}

// LinesPerPage is how many input lines fit on one rendered page.
func LinesPerPage() int {
	letterHeight := 792.0
	return int((letterHeight-2*pageMargin)/lineHeight) + 1
}
