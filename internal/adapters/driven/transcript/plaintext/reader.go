// Package plaintext reads pre-extracted transcript text files.
//
// PDF text extraction happens upstream of Griot; the extractor writes one
// .txt file per transcript with a form-feed character between pages. This
// reader splits those files back into per-page texts.
package plaintext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.TranscriptReader = (*Reader)(nil)

// PageDelimiter separates pages in extracted transcript files.
const PageDelimiter = "\f"

// Reader handles plain-text transcripts with form-feed page breaks.
type Reader struct{}

// New creates a new plain-text transcript reader.
func New() *Reader {
	return &Reader{}
}

// Ext returns the file extension this reader handles.
func (r *Reader) Ext() string { return ".txt" }

// ReadPages returns the document title and ordered page texts. A file
// without any delimiter is a single-page document. Trailing empty pages
// (a common artifact of extractors that end every page with a form feed)
// are dropped; interior blank pages are kept so page numbers stay true
// to the original document.
func (r *Reader) ReadPages(path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read transcript: %w", err)
	}

	pages := strings.Split(string(data), PageDelimiter)
	for len(pages) > 0 && strings.TrimSpace(pages[len(pages)-1]) == "" {
		pages = pages[:len(pages)-1]
	}

	return extractTitle(path), pages, nil
}

// extractTitle derives a human-readable title from the file path.
func extractTitle(path string) string {
	filename := filepath.Base(path)

	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	return filename
}
