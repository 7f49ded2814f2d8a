package pdfparser

import (
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// TextExtractor extracts the plain text of a PDF document. Tests substitute
// MockExtractor so parsing logic can be exercised without PDF fixtures.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// DocumentExtractor reads text page by page from a real PDF file.
type DocumentExtractor struct{}

// ExtractText concatenates the plain text of every page.
func (DocumentExtractor) ExtractText(path string) (string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening PDF file: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("error extracting text from page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// MockExtractor returns canned text or a canned error.
type MockExtractor struct {
	Text string
	Err  error
}

func (m MockExtractor) ExtractText(string) (string, error) {
	return m.Text, m.Err
}
