package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

// wordCounter counts whitespace-separated words. Exact and predictable,
// which keeps the boundary assertions below readable.
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func doc(pages ...string) domain.Document {
	return domain.Document{ID: 1, Title: "interview_01", Pages: pages}
}

func TestChunk_SinglePageMergesParagraphs(t *testing.T) {
	c := New(wordCounter{}, WithMaxTokens(100))

	chunks := c.Chunk(doc("AAA\n\nBBB"))

	require.Len(t, chunks, 1)
	assert.Equal(t, "AAA\nBBB", chunks[0].Text)
	assert.Equal(t, 1, chunks[0].Page)
	assert.Equal(t, "interview_01", chunks[0].Source)
	assert.Equal(t, 1, chunks[0].DocID)
	assert.Equal(t, 2, chunks[0].Tokens)
}

func TestChunk_FlushesAtTokenCap(t *testing.T) {
	c := New(wordCounter{}, WithMaxTokens(4))

	// Three 2-word paragraphs: first two pack into one chunk, the third
	// would push past 4 tokens and starts a new buffer.
	chunks := c.Chunk(doc("one two\n\nthree four\n\nfive six"))

	require.Len(t, chunks, 2)
	assert.Equal(t, "one two\nthree four", chunks[0].Text)
	assert.Equal(t, "five six", chunks[1].Text)
}

func TestChunk_NoChunkExceedsCapExceptLoneParagraph(t *testing.T) {
	c := New(wordCounter{}, WithMaxTokens(5))

	pages := []string{
		"a b c\n\nd e f\n\ng h\n\ni",
		strings.Repeat("w ", 20), // one paragraph, 20 words, over cap
	}
	chunks := c.Chunk(doc(pages...))

	require.NotEmpty(t, chunks)
	for _, ch := range chunks {
		if ch.Page == 2 {
			// Oversized lone paragraph is emitted whole, not split.
			assert.Equal(t, 20, ch.Tokens)
			continue
		}
		assert.LessOrEqual(t, ch.Tokens, 5, "chunk %q", ch.Text)
	}
}

func TestChunk_OversizedParagraphDoesNotAbsorbNeighbours(t *testing.T) {
	c := New(wordCounter{}, WithMaxTokens(3))

	chunks := c.Chunk(doc("one two three four five\n\nsix"))

	require.Len(t, chunks, 2)
	assert.Equal(t, "one two three four five", chunks[0].Text)
	assert.Equal(t, "six", chunks[1].Text)
}

func TestChunk_NeverSpansPages(t *testing.T) {
	c := New(wordCounter{}, WithMaxTokens(100))

	chunks := c.Chunk(doc("page one text", "page two text"))

	require.Len(t, chunks, 2)
	assert.Equal(t, 1, chunks[0].Page)
	assert.Equal(t, 2, chunks[1].Page)
}

func TestChunk_SkipsBlankParagraphsAndPages(t *testing.T) {
	c := New(wordCounter{})

	chunks := c.Chunk(doc("  \n\n\t\n\nhello\n\n   ", "", "   \n  "))

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello", chunks[0].Text)
	assert.Equal(t, 1, chunks[0].Page)
}

func TestChunk_EmptyDocument(t *testing.T) {
	c := New(wordCounter{})

	assert.Empty(t, c.Chunk(domain.Document{ID: 2, Title: "empty"}))
}

func TestChunk_DoesNotMutateInput(t *testing.T) {
	c := New(wordCounter{})
	d := doc("AAA\n\nBBB")
	orig := d.Pages[0]

	_ = c.Chunk(d)

	assert.Equal(t, orig, d.Pages[0])
}

func TestNew_DefaultMaxTokens(t *testing.T) {
	c := New(wordCounter{})
	assert.Equal(t, DefaultMaxTokens, c.maxTokens)

	c = New(wordCounter{}, WithMaxTokens(-1))
	assert.Equal(t, DefaultMaxTokens, c.maxTokens)
}
