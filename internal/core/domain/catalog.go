package domain

// CatalogEntry is the display record for one ingested document.
type CatalogEntry struct {
	// ID is the 1-based document id (row position in the catalog).
	ID int

	// Name is the display name shown in aggregated results.
	Name string

	// Pages is the page count recorded at ingestion time.
	Pages int
}

// Catalog maps document ids to display records. It is sourced from the
// catalog artifact independently of the corpus and, like the corpus, is
// immutable once loaded.
type Catalog map[int]CatalogEntry

// Name returns the display name for id, or "Unknown" when the id is
// absent from the catalog.
func (c Catalog) Name(id int) string {
	if entry, ok := c[id]; ok && entry.Name != "" {
		return entry.Name
	}
	return "Unknown"
}
