package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/core/ports/driving"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Ensure RetrievalService implements the interface.
var _ driving.RetrievalService = (*RetrievalService)(nil)

// RetrievalService answers questions with document references: one
// blocking call converts the question into a vector, one exhaustive
// index scan ranks the corpus, and aggregation compresses the hits into
// at most two document-level results. The service keeps no per-question
// state; concurrent questions are independent.
type RetrievalService struct {
	embedder driven.EmbeddingService
	index    driven.SimilarityIndex
	topK     int
}

// NewRetrievalService creates a retrieval service. Non-positive topK
// falls back to the index default.
func NewRetrievalService(embedder driven.EmbeddingService, index driven.SimilarityIndex, topK int) *RetrievalService {
	return &RetrievalService{
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// FindRelevantContext locates the transcript passages most relevant to
// the question and returns their document references. The index state is
// checked before the embedding call: a Failed load must surface as
// "retrieval unavailable", never as an empty answer.
func (s *RetrievalService) FindRelevantContext(ctx context.Context, question string, opts domain.QueryOptions) ([]domain.AggregatedResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return []domain.AggregatedResult{}, nil
	}

	if state := s.index.State(); state != domain.IndexReady {
		return nil, fmt.Errorf("index is %s: %w", state, domain.ErrIndexUnavailable)
	}

	logger.Section("Retrieval")
	logger.Debug("Question: %q", question)

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	if opts.TopK <= 0 {
		opts.TopK = s.topK
	}
	hits, err := s.index.Query(ctx, vector, opts)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	logger.Debug("Raw hits: %d", len(hits))

	results := Aggregate(hits, s.index.Catalog())
	logger.Info("Aggregated %d hits into %d documents", len(hits), len(results))
	return results, nil
}

// Reload rebuilds the index from the persisted artifacts.
func (s *RetrievalService) Reload(ctx context.Context) error {
	return s.index.Load(ctx)
}

// Health reports the index lifecycle state.
func (s *RetrievalService) Health() domain.IndexState {
	return s.index.State()
}
