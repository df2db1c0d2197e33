package driven

import (
	"context"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

// CorpusStore persists the corpus artifact produced by ingestion and
// loads it back at service start.
type CorpusStore interface {
	// Load reads and schema-checks the artifact. A missing or malformed
	// primary vector container returns an error wrapping
	// domain.ErrCorpusMalformed; absent texts or metadata containers are
	// non-fatal and default to empty.
	Load(ctx context.Context) (*domain.Corpus, error)

	// Save writes the artifact, replacing any previous one.
	Save(ctx context.Context, corpus *domain.Corpus) error
}

// CatalogStore persists the document catalog: tabular text with a header
// row and one data row per document in ingestion order (id = 1-based row
// position).
type CatalogStore interface {
	// Load reads the catalog. The catalog is parsed independently of the
	// corpus and is not required for index readiness, only for display
	// names downstream.
	Load(ctx context.Context) (domain.Catalog, error)

	// Save writes the catalog in ingestion order.
	Save(ctx context.Context, entries []domain.CatalogEntry) error
}

// SimilarityIndex answers k-nearest-neighbour queries over the loaded
// corpus by cosine similarity. The scan is exhaustive by design: the
// corpus is assumed small (low thousands of chunks) and the linear scan
// is a documented scale boundary, not an oversight.
type SimilarityIndex interface {
	// Load builds the index from the corpus and catalog stores, moving
	// it to Ready or Failed. A Ready index keeps serving its current
	// corpus while a reload is in flight.
	Load(ctx context.Context) error

	// Query returns the top-k stored chunks by cosine similarity to
	// vector, at most opts.TopK hits. Stored vectors whose dimensionality
	// differs from the query's are skipped. Querying a non-Ready index
	// returns domain.ErrIndexUnavailable.
	Query(ctx context.Context, vector []float32, opts domain.QueryOptions) ([]domain.SearchHit, error)

	// Catalog returns the catalog loaded alongside the corpus.
	Catalog() domain.Catalog

	// State reports the index lifecycle state.
	State() domain.IndexState
}
