// Package memory provides the in-memory similarity index.
//
// The index answers k-nearest-neighbour queries with an exhaustive
// cosine-similarity scan over every stored vector. At the intended scale
// (low thousands of chunks) the linear scan is a deliberate, documented
// boundary; an approximate-nearest-neighbour structure is a possible
// future extension, not a missing piece.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Ensure Index implements the interface.
var _ driven.SimilarityIndex = (*Index)(nil)

// DefaultTopK is the number of hits returned when the caller does not
// ask for a specific k.
const DefaultTopK = 5

// Index holds the corpus vectors and aligned metadata in memory.
// The corpus is immutable once Ready, so concurrent queries share it
// without coordination; the lock only guards the swap during (re)load.
type Index struct {
	corpusStore  driven.CorpusStore
	catalogStore driven.CatalogStore

	mu      sync.RWMutex
	state   domain.IndexState
	corpus  *domain.Corpus
	catalog domain.Catalog
}

// New creates an index in the Uninitialized state. Call Load before
// querying.
func New(corpusStore driven.CorpusStore, catalogStore driven.CatalogStore) *Index {
	return &Index{
		corpusStore:  corpusStore,
		catalogStore: catalogStore,
		state:        domain.IndexUninitialized,
	}
}

// Load reads the corpus and catalog artifacts and moves the index to
// Ready, or to Failed on a structural corpus error. A missing catalog is
// degraded but not fatal: display names fall back to "Unknown" downstream.
// A Ready index keeps serving its current corpus while a reload is in
// flight; the swap happens only once the new corpus is fully loaded.
func (idx *Index) Load(ctx context.Context) error {
	idx.mu.Lock()
	if idx.state != domain.IndexReady {
		idx.state = domain.IndexLoading
	}
	idx.mu.Unlock()

	corpus, err := idx.corpusStore.Load(ctx)
	if err != nil {
		idx.mu.Lock()
		idx.state = domain.IndexFailed
		idx.corpus = nil
		idx.catalog = nil
		idx.mu.Unlock()
		return fmt.Errorf("load corpus: %w", err)
	}

	catalog, err := idx.catalogStore.Load(ctx)
	if err != nil {
		logger.Warn("Catalog unavailable, display names degrade to Unknown: %v", err)
		catalog = domain.Catalog{}
	}

	idx.mu.Lock()
	idx.corpus = corpus
	idx.catalog = catalog
	idx.state = domain.IndexReady
	idx.mu.Unlock()

	logger.Info("Index ready: %d chunks, %d dimensions, %d catalog entries",
		corpus.Len(), corpus.Dimensions(), len(catalog))
	return nil
}

// Query scans every stored vector, scores it by cosine similarity to the
// query vector, and returns the top k hits in descending score order.
// Ties keep their original corpus position (stable sort). Stored vectors
// whose dimensionality differs from the query's are logged and skipped;
// an empty corpus returns an empty slice without error.
func (idx *Index) Query(_ context.Context, vector []float32, opts domain.QueryOptions) ([]domain.SearchHit, error) {
	idx.mu.RLock()
	state := idx.state
	corpus := idx.corpus
	idx.mu.RUnlock()

	if state != domain.IndexReady {
		return nil, fmt.Errorf("index is %s: %w", state, domain.ErrIndexUnavailable)
	}

	k := opts.TopK
	if k <= 0 {
		k = DefaultTopK
	}

	hits := make([]domain.SearchHit, 0, corpus.Len())
	for i, stored := range corpus.Vectors {
		if len(stored) != len(vector) {
			logger.Warn("Skipping corrupt vector %d: dimension %d, query has %d",
				i, len(stored), len(vector))
			continue
		}

		meta := domain.ChunkMeta{}
		if i < len(corpus.Meta) {
			meta = corpus.Meta[i]
		}
		if opts.SourceFilter != "" && meta.Source != opts.SourceFilter {
			continue
		}

		text := ""
		if i < len(corpus.Texts) {
			text = corpus.Texts[i]
		}

		hits = append(hits, domain.SearchHit{
			Text:  text,
			Meta:  meta,
			Score: cosineSimilarity(vector, stored),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}

	return hits, nil
}

// Catalog returns the catalog loaded alongside the corpus.
func (idx *Index) Catalog() domain.Catalog {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.catalog
}

// State reports the index lifecycle state.
func (idx *Index) State() domain.IndexState {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.state
}

// cosineSimilarity returns the dot product of a and b divided by the
// product of their norms. A zero-norm operand yields 0.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
