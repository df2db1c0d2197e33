package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexUnavailable indicates the similarity index is not Ready.
	// Callers should report retrieval unavailable rather than crash.
	ErrIndexUnavailable = errors.New("index unavailable")

	// ErrCorpusMalformed indicates the corpus artifact failed its schema
	// check. A malformed primary vector container is fatal: the index
	// enters Failed and refuses queries.
	ErrCorpusMalformed = errors.New("corpus artifact malformed")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or unreachable. Questions cannot be vectorised without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
