// Package domain defines the core business entities for Griot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An oral-history transcript split into pages
//   - Chunk: A token-bounded span of one page, the unit of retrieval
//   - Corpus: The index-aligned vectors, texts and metadata loaded at start
//   - Catalog: The document-id to display-record mapping
//   - SearchHit / AggregatedResult: Raw and grouped query results
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
