package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore persists the corpus artifact as a single JSON document:
//
//	{ "embeddings": [[...], ...], "texts": [...], "metadata": [...] }
//
// with all three containers index-aligned.
type CorpusStore struct {
	path string
}

// NewCorpusStore creates a corpus store backed by the given file path.
func NewCorpusStore(path string) *CorpusStore {
	return &CorpusStore{path: path}
}

// Path returns the artifact location.
func (s *CorpusStore) Path() string { return s.path }

// artifact mirrors the persisted shape. Raw messages let each container
// be validated on its own terms: the vector container strictly, the
// others permissively.
type artifact struct {
	Embeddings json.RawMessage `json:"embeddings"`
	Texts      json.RawMessage `json:"texts"`
	Metadata   json.RawMessage `json:"metadata"`
}

// Load reads and schema-checks the artifact. The embeddings container is
// the index's reason to exist: a missing file, unparsable document, or
// absent/malformed embeddings list is a structural error wrapping
// domain.ErrCorpusMalformed. Absent or malformed texts and metadata are
// degraded to empty with a warning.
func (s *CorpusStore) Load(_ context.Context) (*domain.Corpus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrCorpusMalformed, s.path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", domain.ErrCorpusMalformed, s.path, err)
	}

	if len(art.Embeddings) == 0 {
		return nil, fmt.Errorf("%w: embeddings container missing", domain.ErrCorpusMalformed)
	}

	corpus := &domain.Corpus{}
	if err := json.Unmarshal(art.Embeddings, &corpus.Vectors); err != nil {
		return nil, fmt.Errorf("%w: embeddings is not a list of vectors: %v", domain.ErrCorpusMalformed, err)
	}

	if len(art.Texts) > 0 {
		if err := json.Unmarshal(art.Texts, &corpus.Texts); err != nil {
			logger.Warn("Corpus texts container malformed, degrading to empty: %v", err)
			corpus.Texts = nil
		}
	}
	if len(art.Metadata) > 0 {
		if err := json.Unmarshal(art.Metadata, &corpus.Meta); err != nil {
			logger.Warn("Corpus metadata container malformed, degrading to empty: %v", err)
			corpus.Meta = nil
		}
	}

	if len(corpus.Texts) != len(corpus.Vectors) || len(corpus.Meta) != len(corpus.Vectors) {
		logger.Warn("Corpus containers misaligned: %d vectors, %d texts, %d metadata",
			len(corpus.Vectors), len(corpus.Texts), len(corpus.Meta))
	}

	return corpus, nil
}

// Save writes the artifact, creating parent directories as needed.
func (s *CorpusStore) Save(_ context.Context, corpus *domain.Corpus) error {
	if corpus == nil {
		return domain.ErrInvalidInput
	}

	out := struct {
		Embeddings [][]float32        `json:"embeddings"`
		Texts      []string           `json:"texts"`
		Metadata   []domain.ChunkMeta `json:"metadata"`
	}{
		Embeddings: corpus.Vectors,
		Texts:      corpus.Texts,
		Metadata:   corpus.Meta,
	}
	if out.Embeddings == nil {
		out.Embeddings = [][]float32{}
	}
	if out.Texts == nil {
		out.Texts = []string{}
	}
	if out.Metadata == nil {
		out.Metadata = []domain.ChunkMeta{}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write corpus artifact: %w", err)
	}
	return nil
}
