package driving

import (
	"context"

	"github.com/griot-labs/griot-cli/internal/core/domain"
)

// RetrievalService answers natural-language questions with document
// references. It is stateless across questions.
type RetrievalService interface {
	// FindRelevantContext converts the question into a vector, runs a
	// similarity query, and returns at most two aggregated document
	// references. A zero opts.TopK falls back to the configured default.
	// When the index is Failed it returns domain.ErrIndexUnavailable
	// rather than silently returning nothing.
	FindRelevantContext(ctx context.Context, question string, opts domain.QueryOptions) ([]domain.AggregatedResult, error)

	// Reload rebuilds the index from the persisted artifacts.
	Reload(ctx context.Context) error

	// Health reports the index lifecycle state.
	Health() domain.IndexState
}
