package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract returns the text of every page in order, each page followed by a
// newline, with surrounding whitespace trimmed. The pdf reader panics on some
// malformed inputs, so panics are turned into ErrExtract.
func (e *PDFExtractor) Extract(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed pdf: %v", ErrExtract, r)
		}
	}()
	if len(content) == 0 {
		return "", fmt.Errorf("%w: empty document", ErrExtract)
	}
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %w", ErrExtract, err)
	}
	var buf strings.Builder
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %w", ErrExtract, i, err)
		}
		buf.WriteString(pageText)
		buf.WriteByte('\n')
	}
	return strings.TrimSpace(buf.String()), nil
}
