package domain

// QueryOptions configures a similarity query.
type QueryOptions struct {
	// TopK is the maximum number of hits to return. Defaults to 5.
	TopK int

	// SourceFilter, when non-empty, restricts candidates to chunks whose
	// Source matches before ranking.
	SourceFilter string
}

// SearchHit is a single raw similarity match.
type SearchHit struct {
	// Text is the matched chunk text.
	Text string

	// Meta is the matched chunk's metadata.
	Meta ChunkMeta

	// Score is the cosine similarity to the query vector, in [-1, 1]
	// (practically [0, 1] for typical embeddings).
	Score float64
}

// AggregatedResult is one document-level result produced by grouping
// raw hits. It points the user at a location (document, page ranges)
// without surfacing transcript content to them; Text is carried for the
// downstream prose-generation layer only.
type AggregatedResult struct {
	// ID is the document id.
	ID int `json:"id"`

	// Name is the catalog display name, or "Unknown".
	Name string `json:"name"`

	// Pages holds compressed page-range tokens, e.g. ["3-5", "7"].
	Pages []string `json:"pages"`

	// RelevanceScore is the maximum chunk score within the document.
	RelevanceScore float64 `json:"relevance_score"`

	// Text is the concatenation of the document's kept chunk texts,
	// joined with a blank line.
	Text string `json:"text"`
}

// IndexState describes the similarity index lifecycle. The index moves
// Uninitialized -> Loading -> Ready on success or Loading -> Failed on a
// structural load error. There is no automatic transition back to Loading.
type IndexState int32

const (
	// IndexUninitialized means Load has never been called.
	IndexUninitialized IndexState = iota

	// IndexLoading means a load is in progress.
	IndexLoading

	// IndexReady means the index serves queries.
	IndexReady

	// IndexFailed means the last load failed structurally; queries must
	// fail fast rather than degrade to empty results.
	IndexFailed
)

// String returns a human-readable state name.
func (s IndexState) String() string {
	switch s {
	case IndexUninitialized:
		return "uninitialized"
	case IndexLoading:
		return "loading"
	case IndexReady:
		return "ready"
	case IndexFailed:
		return "failed"
	default:
		return "unknown"
	}
}
