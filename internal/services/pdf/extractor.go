// Package pdf provides PDF text extraction for datasheets.
//
// We use the ledongthuc/pdf library for text extraction.
// It's a pure Go implementation — no CGO or external dependencies required.
// This makes deployment simpler (just a single binary).
//
// Datasheet text is linear: we concatenate every page's extractable text in
// page order, each page followed by a newline. No layout or table-aware
// parsing — the downstream prompt handles tabular data in raw text form.
package pdf

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractionResult holds the output from a PDF text extraction.
type ExtractionResult struct {
	Text      string // Extracted text content, one newline-terminated block per page
	PageCount int    // Number of pages
	WordCount int    // Word count
}

// Extract reads a PDF from the given byte slice and extracts all text content.
//
// Go Pattern: We accept a byte slice instead of a filename because the data
// usually comes from an HTTP upload (in memory), not a file on disk.
// The pdf library requires io.ReaderAt for random access to the PDF structure.
//
// Any page that fails text extraction fails the whole call: the pipeline
// needs the complete datasheet text or nothing, since a missing spec table
// would cause the model to silently return nulls.
func Extract(data []byte) (*ExtractionResult, error) {
	reader := bytes.NewReader(data)
	size := int64(len(data))

	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()

	var allText strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}

		allText.WriteString(text)
		allText.WriteString("\n")
	}

	extractedText := allText.String()

	return &ExtractionResult{
		Text:      extractedText,
		PageCount: pageCount,
		WordCount: countWords(extractedText),
	}, nil
}

// ExtractFile reads a PDF from disk and extracts all text content.
// Used by the CLI, which works with paths rather than uploads.
func ExtractFile(path string) (*ExtractionResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}
	return Extract(data)
}

// countWords counts the number of words in a text string.
func countWords(text string) int {
	words := strings.Fields(text)
	return len(words)
}

// ValidatePDF checks if the data looks like a valid PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
