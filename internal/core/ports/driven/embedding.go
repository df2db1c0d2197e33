package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Note: This is separate from SimilarityIndex, which stores and searches
// vectors. EmbeddingService generates vectors; SimilarityIndex ranks them.
//
// Implementations may include:
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Ollama (nomic-embed-text, all-minilm)
//   - Local models via inference servers
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	// Timeout behaviour is owned by the provider and the passed context;
	// the core defines no timeout of its own.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 768, 1536).
	// This must match the dimensionality of the loaded corpus.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// TokenCounter measures text length in tokens. The chunker and the
// embedding layer must share one counter: if token accounting drifts
// between the two, chunk size guarantees drift with it.
type TokenCounter interface {
	// Count returns the token count of text.
	Count(text string) int
}
