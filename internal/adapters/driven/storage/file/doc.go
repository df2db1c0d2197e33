// Package file provides file-based implementations of driven port interfaces.
// These adapters persist the ingestion artifacts to the local filesystem.
//
// Adapters:
//   - CorpusStore: JSON corpus artifact (vectors, texts, metadata)
//   - CatalogStore: CSV catalog with a header row, one row per document
package file
