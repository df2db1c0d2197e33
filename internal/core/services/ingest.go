package services

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/core/ports/driving"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// Chunker splits a document into token-bounded chunks.
// Implemented by internal/chunker.
type Chunker interface {
	Chunk(doc domain.Document) []domain.Chunk
}

// IngestService runs the offline pipeline: transcripts are read page by
// page, chunked, embedded in throttled batches, and persisted as the
// corpus and catalog artifacts the runtime index loads at start.
type IngestService struct {
	reader       driven.TranscriptReader
	chunker      Chunker
	embedder     *BatchEmbedder
	corpusStore  driven.CorpusStore
	catalogStore driven.CatalogStore
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	reader driven.TranscriptReader,
	chunker Chunker,
	embedder *BatchEmbedder,
	corpusStore driven.CorpusStore,
	catalogStore driven.CatalogStore,
) *IngestService {
	return &IngestService{
		reader:       reader,
		chunker:      chunker,
		embedder:     embedder,
		corpusStore:  corpusStore,
		catalogStore: catalogStore,
	}
}

// Ingest processes every supported transcript under dir. Files are
// visited in sorted path order so document ids are reproducible across
// runs. A file that cannot be read is logged and skipped; ingestion
// continues with the rest.
func (s *IngestService) Ingest(ctx context.Context, dir string) (*driving.IngestSummary, error) {
	logger.Section("Ingestion")

	paths, err := s.collectTranscripts(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no %s transcripts under %s: %w", s.reader.Ext(), dir, domain.ErrNotFound)
	}
	logger.Info("Found %d transcripts", len(paths))

	summary := &driving.IngestSummary{}
	var entries []domain.CatalogEntry
	var chunks []domain.Chunk

	for _, path := range paths {
		title, pages, err := s.reader.ReadPages(path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			summary.Skipped++
			continue
		}

		// Document ids are 1-based positions in ingestion order,
		// assigned here and carried through chunk metadata.
		doc := domain.Document{
			ID:    len(entries) + 1,
			Title: title,
			Pages: pages,
		}
		docChunks := s.chunker.Chunk(doc)
		logger.Debug("Document %d %q: %d pages, %d chunks",
			doc.ID, doc.Title, len(pages), len(docChunks))

		entries = append(entries, domain.CatalogEntry{
			ID:    doc.ID,
			Name:  doc.Title,
			Pages: len(pages),
		})
		chunks = append(chunks, docChunks...)
	}

	vectors, kept, dropped, err := s.embedder.EmbedChunks(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}
	summary.Dropped = dropped
	if dropped > 0 {
		logger.Warn("Dropped %d of %d chunks on embedding failures", dropped, len(chunks))
	}

	corpus := &domain.Corpus{
		Vectors: vectors,
		Texts:   make([]string, 0, len(kept)),
		Meta:    make([]domain.ChunkMeta, 0, len(kept)),
	}
	for _, ch := range kept {
		corpus.Texts = append(corpus.Texts, ch.Text)
		corpus.Meta = append(corpus.Meta, domain.ChunkMeta{
			DocID:  ch.DocID,
			Source: ch.Source,
			Page:   ch.Page,
			Tokens: ch.Tokens,
		})
	}

	if err := s.corpusStore.Save(ctx, corpus); err != nil {
		return nil, fmt.Errorf("save corpus: %w", err)
	}
	if err := s.catalogStore.Save(ctx, entries); err != nil {
		return nil, fmt.Errorf("save catalog: %w", err)
	}

	summary.Documents = len(entries)
	summary.Chunks = corpus.Len()
	logger.Info("Ingested %d documents into %d chunks (%d files skipped, %d chunks dropped)",
		summary.Documents, summary.Chunks, summary.Skipped, summary.Dropped)

	return summary, nil
}

// collectTranscripts returns the sorted paths of supported files under dir.
func (s *IngestService) collectTranscripts(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), s.reader.Ext()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
