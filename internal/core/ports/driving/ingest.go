package driving

import "context"

// IngestSummary reports what an ingestion run produced.
type IngestSummary struct {
	// Documents is the number of transcripts ingested.
	Documents int

	// Chunks is the number of chunks written to the corpus artifact.
	Chunks int

	// Skipped is the number of source files skipped on read errors.
	Skipped int

	// Dropped is the number of chunks dropped on embedding failures.
	Dropped int
}

// IngestService runs the offline pipeline: read transcripts, chunk,
// embed, and persist the corpus and catalog artifacts.
type IngestService interface {
	// Ingest processes every supported transcript under dir.
	Ingest(ctx context.Context, dir string) (*IngestSummary, error)
}
