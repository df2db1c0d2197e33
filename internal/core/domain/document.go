package domain

// Document represents a single oral-history transcript.
// Page texts arrive pre-extracted; Griot never parses PDFs itself.
type Document struct {
	// ID is the 1-based position of the document in ingestion order.
	// It is assigned once at ingestion time and carried through chunk
	// metadata so the runtime never has to parse it out of a filename.
	ID int

	// Title is the human-readable title, derived from the source filename.
	Title string

	// Pages holds the raw text of each page, in order. Pages[0] is page 1.
	Pages []string
}

// Chunk is a token-bounded span of transcript text, the unit of
// embedding and retrieval. A chunk is produced from a single page's
// text and never spans pages.
type Chunk struct {
	// Text is the chunk content: one or more paragraphs joined by newlines.
	Text string

	// DocID is the validated 1-based id of the source document.
	DocID int

	// Source is the source document title.
	Source string

	// Page is the 1-based page number the chunk was cut from.
	Page int

	// Tokens is the token count of Text, measured with the same counter
	// the embedding layer budgets with.
	Tokens int
}

// ChunkMeta is the per-chunk metadata persisted alongside each vector
// in the corpus artifact.
type ChunkMeta struct {
	// DocID is the validated 1-based document id.
	DocID int `json:"doc_id"`

	// Source is the source document title.
	Source string `json:"source"`

	// Page is the 1-based page number.
	Page int `json:"page"`

	// Tokens is the token count of the chunk text.
	Tokens int `json:"tokens"`
}
