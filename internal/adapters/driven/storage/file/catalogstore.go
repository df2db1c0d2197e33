package file

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/core/ports/driven"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// catalogHeader is the header row of the catalog artifact.
var catalogHeader = []string{"name", "pages"}

// CatalogStore persists the document catalog as CSV: a header row, then
// one data row per document in ingestion order. The document id is the
// 1-based row position, not a stored column.
type CatalogStore struct {
	path string
}

// NewCatalogStore creates a catalog store backed by the given file path.
func NewCatalogStore(path string) *CatalogStore {
	return &CatalogStore{path: path}
}

// Path returns the catalog location.
func (s *CatalogStore) Path() string { return s.path }

// Load parses the catalog. Rows with an unparsable page count keep a
// zero count; the name column is what downstream display depends on.
func (s *CatalogStore) Load(_ context.Context) (domain.Catalog, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty: %w", domain.ErrInvalidInput)
	}

	catalog := make(domain.Catalog, len(rows)-1)
	for i, row := range rows[1:] {
		id := i + 1
		entry := domain.CatalogEntry{ID: id}
		if len(row) > 0 {
			entry.Name = row[0]
		}
		if len(row) > 1 {
			pages, err := strconv.Atoi(row[1])
			if err != nil {
				logger.Warn("Catalog row %d has unparsable page count %q", id, row[1])
			} else {
				entry.Pages = pages
			}
		}
		catalog[id] = entry
	}

	return catalog, nil
}

// Save writes the catalog in the order given; entry ids are implied by
// row position and not persisted.
func (s *CatalogStore) Save(_ context.Context, entries []domain.CatalogEntry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(catalogHeader); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}
	for _, e := range entries {
		if err := w.Write([]string{e.Name, strconv.Itoa(e.Pages)}); err != nil {
			return fmt.Errorf("write catalog row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
