// Package approx provides a deterministic approximate token counter.
//
// The chunker budgets chunk sizes in tokens and the embedding provider
// bills in tokens, so both sides of the pipeline must share one counter.
// Remote providers do not expose their tokenizer, so this adapter
// approximates BPE behaviour: one token per short word or punctuation
// mark, and one extra token per four characters of a longer word. The
// approximation errs high for prose, which keeps chunks safely under the
// provider's limits.
package approx

import (
	"unicode"

	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
)

// Ensure Counter implements the interface.
var _ driven.TokenCounter = (*Counter)(nil)

// subwordLen is the assumed characters per subword piece for long words.
const subwordLen = 4

// Counter approximates token counts for chunk budgeting.
type Counter struct{}

// New creates a new approximate token counter.
func New() *Counter {
	return &Counter{}
}

// Count returns the approximate token count of text.
// Empty and all-whitespace text counts as zero tokens.
func (c *Counter) Count(text string) int {
	tokens := 0
	runLen := 0

	flush := func() {
		if runLen == 0 {
			return
		}
		tokens += 1 + (runLen-1)/subwordLen
		runLen = 0
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			runLen++
		case unicode.IsSpace(r):
			flush()
		default:
			// Punctuation is its own token.
			flush()
			tokens++
		}
	}
	flush()

	return tokens
}
