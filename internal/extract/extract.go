package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentUnreadable is returned when a document has no extractable text.
var ErrDocumentUnreadable = errors.New("document unreadable")

var pdfMagic = []byte("%PDF-")

// Text is the linearized content of a document.
type Text struct {
	Content   string
	PageCount int
}

// TextExtractor turns raw document bytes into text.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (Text, error)
}

// PDFExtractor extracts text page by page with github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// ExtractText implements TextExtractor. Malformed input, zero pages and
// image-only documents all yield ErrDocumentUnreadable.
func (PDFExtractor) ExtractText(ctx context.Context, data []byte) (text Text, err error) {
	if err := ctx.Err(); err != nil {
		return Text{}, err
	}
	if !IsPDF(data) {
		return Text{}, fmt.Errorf("%w: not a pdf", ErrDocumentUnreadable)
	}

	// The pdf package panics on some corrupt cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			text = Text{}
			err = fmt.Errorf("%w: %v", ErrDocumentUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Text{}, fmt.Errorf("%w: %v", ErrDocumentUnreadable, err)
	}

	pages := reader.NumPage()
	if pages < 1 {
		return Text{}, fmt.Errorf("%w: no pages", ErrDocumentUnreadable)
	}

	var b strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return Text{}, err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	content := strings.TrimSpace(b.String())
	if content == "" {
		return Text{}, fmt.Errorf("%w: no extractable text", ErrDocumentUnreadable)
	}
	return Text{Content: content, PageCount: pages}, nil
}

// IsPDF reports whether data starts with the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), pdfMagic)
}

// Extract runs the extractor and parses the structured candidate fields.
func Extract(ctx context.Context, extractor TextExtractor, data []byte) (Text, Candidate, error) {
	if extractor == nil {
		extractor = PDFExtractor{}
	}
	text, err := extractor.ExtractText(ctx, data)
	if err != nil {
		return Text{}, Candidate{}, err
	}
	if text.PageCount < 1 {
		return Text{}, Candidate{}, fmt.Errorf("%w: no pages", ErrDocumentUnreadable)
	}
	return text, ParseCandidate(text), nil
}
