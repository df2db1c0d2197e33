// Package chunker provides token-bounded chunking of transcript pages.
package chunker

import (
	"regexp"
	"strings"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
)

// DefaultMaxTokens is the default soft cap on tokens per chunk.
const DefaultMaxTokens = 500

// paragraphSplit matches blank-line boundaries between paragraphs.
var paragraphSplit = regexp.MustCompile(`\n[ \t\r]*\n`)

// Chunker splits per-page document text into token-bounded chunks.
// Paragraphs are packed greedily into a per-page buffer; a chunk never
// spans pages. The token counter must be the same one the embedding
// layer budgets with, or size guarantees drift.
type Chunker struct {
	counter   driven.TokenCounter
	maxTokens int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithMaxTokens sets the soft cap on tokens per chunk.
func WithMaxTokens(max int) Option {
	return func(c *Chunker) {
		if max > 0 {
			c.maxTokens = max
		}
	}
}

// New creates a new chunker with the given token counter and options.
func New(counter driven.TokenCounter, opts ...Option) *Chunker {
	c := &Chunker{
		counter:   counter,
		maxTokens: DefaultMaxTokens,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Chunk splits the document into ordered chunks. The input document is
// not mutated.
//
// Per page: paragraphs are split on blank-line boundaries, blank
// paragraphs are skipped, and consecutive paragraphs are joined with a
// newline until appending the next paragraph would push the buffer past
// the token cap. A single paragraph that alone exceeds the cap is
// emitted whole rather than split further - an accepted soft-cap
// violation.
func (c *Chunker) Chunk(doc domain.Document) []domain.Chunk {
	var chunks []domain.Chunk

	for i, pageText := range doc.Pages {
		page := i + 1
		buffer := ""

		flush := func() {
			if buffer == "" {
				return
			}
			chunks = append(chunks, domain.Chunk{
				Text:   buffer,
				DocID:  doc.ID,
				Source: doc.Title,
				Page:   page,
				Tokens: c.counter.Count(buffer),
			})
			buffer = ""
		}

		for _, para := range paragraphSplit.Split(pageText, -1) {
			para = strings.TrimSpace(para)
			if para == "" {
				continue
			}

			tentative := para
			if buffer != "" {
				tentative = buffer + "\n" + para
			}

			if c.counter.Count(tentative) > c.maxTokens && buffer != "" {
				flush()
				buffer = para
				continue
			}
			buffer = tentative
		}

		flush()
	}

	return chunks
}
