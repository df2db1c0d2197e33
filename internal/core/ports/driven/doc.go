// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - EmbeddingService: Converts text into vectors (external provider)
//   - TokenCounter: Token accounting shared by chunker and embedder
//   - CorpusStore: Corpus artifact persistence
//   - CatalogStore: Catalog artifact persistence
//   - SimilarityIndex: In-memory k-NN over the loaded corpus
//   - TranscriptReader: Per-page text from pre-extracted transcript files
//
// # Optional Interfaces
//
//   - SessionStore: Conversation history for the hosting chat layer.
//     The retrieval core itself stays stateless across questions.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
